package fee

import (
	"context"

	"github.com/trezcool/feeflow/core"
)

var ErrNotFound = core.NewNotFoundError("fee")

type (
	Repository interface {
		QueryAllFees(ctx context.Context) ([]Fee, error)
		GetFeeByID(ctx context.Context, id int) (Fee, error)
		CreateFee(ctx context.Context, f Fee) (Fee, error)
		UpdateFee(ctx context.Context, id int, uf UpdateFee) (Fee, error)
		DeleteFee(ctx context.Context, id int) (Fee, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nf NewFee) (Fee, error) {
	f := Fee{
		Name:      nf.Name,
		Amount:    nf.Amount,
		Category:  nf.Category,
		DueDate:   nf.DueDate,
		Recurring: nf.Recurring,
	}
	if f.Recurring {
		f.Frequency = nf.Frequency
	}
	return svc.repo.CreateFee(ctx, f)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Fee, error) {
	return svc.repo.QueryAllFees(ctx)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Fee, error) {
	fees, err := svc.repo.QueryAllFees(ctx)
	if err != nil || filter.IsEmpty() {
		return fees, err
	}
	filtered := make([]Fee, 0, len(fees))
	for _, f := range fees {
		if filter.Match(f) {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Fee, error) {
	return svc.repo.GetFeeByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int, uf UpdateFee) (Fee, error) {
	return svc.repo.UpdateFee(ctx, id, uf)
}

func (svc *Service) Delete(ctx context.Context, id int) (Fee, error) {
	return svc.repo.DeleteFee(ctx, id)
}
