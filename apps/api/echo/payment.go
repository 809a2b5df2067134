package echoapi

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/feeflow/core/dashboard"
	"github.com/trezcool/feeflow/core/payment"
	exportsvc "github.com/trezcool/feeflow/services/export"
)

type paymentApi struct {
	svc      *payment.Service
	sources  dashboard.Sources
	validate *validator.Validate
}

func registerPaymentAPI(g *echo.Group, svc *payment.Service, sources dashboard.Sources, validate *validator.Validate) {
	api := paymentApi{svc: svc, sources: sources, validate: validate}

	pg := g.Group("/payments")
	pg.GET("", api.query)
	pg.POST("", api.create)
	pg.GET("/export", api.export)

	dg := pg.Group("/:id", objectMiddleware(svc.GetByID))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.PATCH("", api.update)
	dg.DELETE("", api.destroy)
}

// rows resolves the student and fee names of the payments matching the query params.
func (api *paymentApi) rows(ctx echo.Context) ([]dashboard.PaymentRow, error) {
	filter := new(dashboard.PaymentFilter)
	if err := ctx.Bind(filter); err != nil {
		return []dashboard.PaymentRow{}, nil
	}
	filter.Clean()

	snap, err := dashboard.Load(ctx.Request().Context(), api.sources)
	if err != nil {
		return nil, errors.Wrap(err, "loading snapshot")
	}
	return snap.PaymentRows(*filter), nil
}

func (api *paymentApi) query(ctx echo.Context) error {
	rows, err := api.rows(ctx)
	if err != nil {
		return errors.Wrap(err, "querying payments")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *paymentApi) export(ctx echo.Context) error {
	rows, err := api.rows(ctx)
	if err != nil {
		return errors.Wrap(err, "querying payments")
	}
	return sendWorkbook(ctx, "payments.xlsx", func(w io.Writer) error {
		return exportsvc.WritePayments(w, rows)
	})
}

func (api *paymentApi) create(ctx echo.Context) error {
	var data payment.NewPayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	pmt, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "recording payment")
	}
	return ctx.JSON(http.StatusCreated, pmt)
}

func (api *paymentApi) retrieve(ctx echo.Context) error {
	pmt, err := contextObject[payment.Payment](ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pmt)
}

func (api *paymentApi) update(ctx echo.Context) error {
	pmt, err := contextObject[payment.Payment](ctx)
	if err != nil {
		return err
	}

	var data payment.UpdatePayment
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePayment")
	}
	if err = data.Validate(api.validate, pmt); err != nil {
		return err
	}

	pmt, err = api.svc.Update(ctx.Request().Context(), pmt.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating payment")
	}
	return ctx.JSON(http.StatusOK, pmt)
}

func (api *paymentApi) destroy(ctx echo.Context) error {
	pmt, err := contextObject[payment.Payment](ctx)
	if err != nil {
		return err
	}

	removed, err := api.svc.Delete(ctx.Request().Context(), pmt.ID)
	if err != nil {
		return errors.Wrap(err, "deleting payment")
	}
	return ctx.JSON(http.StatusOK, removed)
}
