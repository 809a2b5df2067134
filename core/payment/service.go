package payment

import (
	"context"

	"github.com/trezcool/feeflow/core"
)

var ErrNotFound = core.NewNotFoundError("payment")

type (
	Repository interface {
		QueryAllPayments(ctx context.Context) ([]Payment, error)
		GetPaymentByID(ctx context.Context, id int) (Payment, error)
		CreatePayment(ctx context.Context, pmt Payment) (Payment, error)
		UpdatePayment(ctx context.Context, id int, up UpdatePayment) (Payment, error)
		DeletePayment(ctx context.Context, id int) (Payment, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, np NewPayment) (Payment, error) {
	return svc.repo.CreatePayment(ctx, Payment{
		StudentID:   np.StudentID,
		FeeID:       np.FeeID,
		Amount:      np.Amount,
		PaymentDate: np.PaymentDate,
		Method:      np.Method,
		Reference:   np.Reference,
		Status:      np.Status,
	})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Payment, error) {
	return svc.repo.QueryAllPayments(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Payment, error) {
	return svc.repo.GetPaymentByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int, up UpdatePayment) (Payment, error) {
	return svc.repo.UpdatePayment(ctx, id, up)
}

func (svc *Service) Delete(ctx context.Context, id int) (Payment, error) {
	return svc.repo.DeletePayment(ctx, id)
}
