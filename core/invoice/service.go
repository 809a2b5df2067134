package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/trezcool/feeflow/core"
	"github.com/trezcool/feeflow/core/fee"
)

var (
	ErrNotFound = core.NewNotFoundError("invoice")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		QueryAllInvoices(ctx context.Context) ([]Invoice, error)
		GetInvoiceByID(ctx context.Context, id int) (Invoice, error)
		CreateInvoice(ctx context.Context, inv Invoice) (Invoice, error)
		UpdateInvoice(ctx context.Context, id int, ui UpdateInvoice) (Invoice, error)
		DeleteInvoice(ctx context.Context, id int) (Invoice, error)
	}

	// FeeGetter looks up the fees billed on an invoice.
	FeeGetter interface {
		GetByID(ctx context.Context, id int) (fee.Fee, error)
	}

	Service struct {
		repo Repository
		fees FeeGetter
	}
)

func NewService(repo Repository, fees FeeGetter) *Service {
	return &Service{repo: repo, fees: fees}
}

// Create stores a new invoice, totalling the referenced fees as they are now.
func (svc *Service) Create(ctx context.Context, ni NewInvoice) (Invoice, error) {
	feeIDs := UniqueFees(ni.Fees)
	total := decimal.Zero
	for _, id := range feeIDs {
		f, err := svc.fees.GetByID(ctx, id)
		if err != nil {
			if errors.Cause(err) == fee.ErrNotFound {
				return Invoice{}, core.NewValidationError(
					errors.Wrapf(err, "fee %d", id),
					core.FieldError{Field: "fees", Error: fmt.Sprintf("fee %d does not exist", id)},
				)
			}
			return Invoice{}, errors.Wrapf(err, "getting fee %d", id)
		}
		total = total.Add(f.Amount)
	}

	today := core.DateOf(nowFunc().UTC())
	dueDate := ni.DueDate
	if dueDate.IsZero() {
		dueDate = today.AddDays(DefaultDueDays)
	}
	status := ni.Status
	if status == "" {
		status = StatusUnpaid
	}

	return svc.repo.CreateInvoice(ctx, Invoice{
		StudentID:   ni.StudentID,
		Fees:        feeIDs,
		TotalAmount: total,
		DueDate:     dueDate,
		Status:      status,
		CreatedDate: today,
	})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Invoice, error) {
	return svc.repo.QueryAllInvoices(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Invoice, error) {
	return svc.repo.GetInvoiceByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int, ui UpdateInvoice) (Invoice, error) {
	return svc.repo.UpdateInvoice(ctx, id, ui)
}

func (svc *Service) Delete(ctx context.Context, id int) (Invoice, error) {
	return svc.repo.DeleteInvoice(ctx, id)
}
