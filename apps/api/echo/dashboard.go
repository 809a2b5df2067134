package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/feeflow/core/dashboard"
)

type dashboardApi struct {
	sources dashboard.Sources
}

func registerDashboardAPI(g *echo.Group, sources dashboard.Sources) {
	api := dashboardApi{sources: sources}
	g.GET("/dashboard", api.summary)
}

func (api *dashboardApi) summary(ctx echo.Context) error {
	snap, err := dashboard.Load(ctx.Request().Context(), api.sources)
	if err != nil {
		return errors.Wrap(err, "loading snapshot")
	}
	return ctx.JSON(http.StatusOK, snap.Summarize(nowFunc()))
}
