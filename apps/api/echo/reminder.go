package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/feeflow/core"
	"github.com/trezcool/feeflow/core/reminder"
)

type reminderApi struct {
	svc      *reminder.Service
	validate *validator.Validate
}

func registerReminderAPI(g *echo.Group, svc *reminder.Service, validate *validator.Validate) {
	api := reminderApi{svc: svc, validate: validate}

	rg := g.Group("/reminders")
	rg.GET("", api.query)
	rg.POST("", api.create)
	rg.GET("/variables", api.queryVariables)
	rg.GET("/defaults", api.defaults)
	rg.POST("/inspect", api.inspect)

	dg := rg.Group("/:id", objectMiddleware(svc.GetByID))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.PATCH("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/toggle", api.toggle)
}

func (api *reminderApi) query(ctx echo.Context) error {
	filter := new(reminder.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []reminder.Template{})
	}
	filter.Clean()

	templates, err := api.svc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying reminder templates")
	}
	return ctx.JSON(http.StatusOK, templates)
}

func (api *reminderApi) queryVariables(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, reminder.Variables)
}

func (api *reminderApi) defaults(ctx echo.Context) error {
	var query DefaultsRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DefaultsRequest")
	}
	if err := query.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, reminder.Default(query.Type))
}

// inspect reports the variables a template text refers to; unknown ones are not an error.
func (api *reminderApi) inspect(ctx echo.Context) error {
	var data InspectRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to InspectRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, reminder.Inspect(data.Type, data.Template))
}

func (api *reminderApi) create(ctx echo.Context) error {
	var data reminder.NewTemplate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTemplate")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tmpl, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating reminder template")
	}
	return ctx.JSON(http.StatusCreated, tmpl)
}

func (api *reminderApi) retrieve(ctx echo.Context) error {
	tmpl, err := contextObject[reminder.Template](ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tmpl)
}

func (api *reminderApi) update(ctx echo.Context) error {
	tmpl, err := contextObject[reminder.Template](ctx)
	if err != nil {
		return err
	}

	var data reminder.UpdateTemplate
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTemplate")
	}
	if err = data.Validate(api.validate, tmpl); err != nil {
		return err
	}

	tmpl, err = api.svc.Update(ctx.Request().Context(), tmpl.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating reminder template")
	}
	return ctx.JSON(http.StatusOK, tmpl)
}

func (api *reminderApi) toggle(ctx echo.Context) error {
	tmpl, err := contextObject[reminder.Template](ctx)
	if err != nil {
		return err
	}

	tmpl, err = api.svc.ToggleActive(ctx.Request().Context(), tmpl.ID)
	if err != nil {
		return errors.Wrap(err, "toggling reminder template")
	}
	return ctx.JSON(http.StatusOK, tmpl)
}

func (api *reminderApi) destroy(ctx echo.Context) error {
	tmpl, err := contextObject[reminder.Template](ctx)
	if err != nil {
		return err
	}

	removed, err := api.svc.Delete(ctx.Request().Context(), tmpl.ID)
	if err != nil {
		return errors.Wrap(err, "deleting reminder template")
	}
	return ctx.JSON(http.StatusOK, removed)
}

type (
	DefaultsRequest struct {
		Type reminder.Type `query:"type" json:"type" validate:"required,oneof=email sms"`
	}

	InspectRequest struct {
		Type     reminder.Type `json:"type" validate:"required,oneof=email sms"`
		Template string        `json:"template"`
	}
)

func (dr *DefaultsRequest) Validate(validate *validator.Validate) error {
	dr.Type = reminder.Type(core.CleanString(string(dr.Type), true /* lower */))
	return validate.Struct(dr)
}
