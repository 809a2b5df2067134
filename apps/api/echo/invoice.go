package echoapi

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/feeflow/core/dashboard"
	"github.com/trezcool/feeflow/core/invoice"
	exportsvc "github.com/trezcool/feeflow/services/export"
)

type invoiceApi struct {
	svc      *invoice.Service
	sources  dashboard.Sources
	validate *validator.Validate
}

func registerInvoiceAPI(g *echo.Group, svc *invoice.Service, sources dashboard.Sources, validate *validator.Validate) {
	api := invoiceApi{svc: svc, sources: sources, validate: validate}

	ig := g.Group("/invoices")
	ig.GET("", api.query)
	ig.POST("", api.create)
	ig.GET("/export", api.export)

	dg := ig.Group("/:id", objectMiddleware(svc.GetByID))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.PATCH("", api.update)
	dg.DELETE("", api.destroy)
}

func (api *invoiceApi) rows(ctx echo.Context) ([]dashboard.InvoiceRow, error) {
	filter := new(dashboard.InvoiceFilter)
	if err := ctx.Bind(filter); err != nil {
		return []dashboard.InvoiceRow{}, nil
	}
	filter.Clean()

	snap, err := dashboard.Load(ctx.Request().Context(), api.sources)
	if err != nil {
		return nil, errors.Wrap(err, "loading snapshot")
	}
	return snap.InvoiceRows(*filter, nowFunc()), nil
}

func (api *invoiceApi) query(ctx echo.Context) error {
	rows, err := api.rows(ctx)
	if err != nil {
		return errors.Wrap(err, "querying invoices")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *invoiceApi) export(ctx echo.Context) error {
	rows, err := api.rows(ctx)
	if err != nil {
		return errors.Wrap(err, "querying invoices")
	}
	return sendWorkbook(ctx, "invoices.xlsx", func(w io.Writer) error {
		return exportsvc.WriteInvoices(w, rows)
	})
}

func (api *invoiceApi) create(ctx echo.Context) error {
	var data invoice.NewInvoice
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewInvoice")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	inv, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating invoice")
	}
	return ctx.JSON(http.StatusCreated, inv)
}

// retrieve answers with the invoice detail: its student and the fees it bills.
func (api *invoiceApi) retrieve(ctx echo.Context) error {
	inv, err := contextObject[invoice.Invoice](ctx)
	if err != nil {
		return err
	}

	snap, err := dashboard.Load(ctx.Request().Context(), api.sources)
	if err != nil {
		return errors.Wrap(err, "loading snapshot")
	}
	return ctx.JSON(http.StatusOK, snap.InvoiceDetail(inv, nowFunc()))
}

func (api *invoiceApi) update(ctx echo.Context) error {
	inv, err := contextObject[invoice.Invoice](ctx)
	if err != nil {
		return err
	}

	var data invoice.UpdateInvoice
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateInvoice")
	}
	if err = data.Validate(api.validate, inv); err != nil {
		return err
	}

	inv, err = api.svc.Update(ctx.Request().Context(), inv.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating invoice")
	}
	return ctx.JSON(http.StatusOK, inv)
}

func (api *invoiceApi) destroy(ctx echo.Context) error {
	inv, err := contextObject[invoice.Invoice](ctx)
	if err != nil {
		return err
	}

	removed, err := api.svc.Delete(ctx.Request().Context(), inv.ID)
	if err != nil {
		return errors.Wrap(err, "deleting invoice")
	}
	return ctx.JSON(http.StatusOK, removed)
}
