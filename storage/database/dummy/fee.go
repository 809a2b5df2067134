package dummydb

import (
	"context"

	"github.com/trezcool/feeflow/core/fee"
)

type feeRepository struct {
	db *DB
}

var _ fee.Repository = (*feeRepository)(nil) // interface compliance check

func NewFeeRepository(db *DB) fee.Repository {
	return &feeRepository{db: db}
}

func (repo *feeRepository) QueryAllFees(ctx context.Context) ([]fee.Fee, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	return repo.db.fee.all(), nil
}

func (repo *feeRepository) GetFeeByID(ctx context.Context, id int) (fee.Fee, error) {
	if err := repo.db.wait(ctx); err != nil {
		return fee.Fee{}, err
	}
	if f, ok := repo.db.fee.get(id); ok {
		return f, nil
	}
	return fee.Fee{}, fee.ErrNotFound
}

func (repo *feeRepository) CreateFee(ctx context.Context, f fee.Fee) (fee.Fee, error) {
	if err := repo.db.wait(ctx); err != nil {
		return fee.Fee{}, err
	}
	return repo.db.fee.insert(f), nil
}

func (repo *feeRepository) UpdateFee(ctx context.Context, id int, uf fee.UpdateFee) (fee.Fee, error) {
	if err := repo.db.wait(ctx); err != nil {
		return fee.Fee{}, err
	}
	if f, ok := repo.db.fee.update(id, uf.Apply); ok {
		return f, nil
	}
	return fee.Fee{}, fee.ErrNotFound
}

func (repo *feeRepository) DeleteFee(ctx context.Context, id int) (fee.Fee, error) {
	if err := repo.db.wait(ctx); err != nil {
		return fee.Fee{}, err
	}
	if f, ok := repo.db.fee.remove(id); ok {
		return f, nil
	}
	return fee.Fee{}, fee.ErrNotFound
}
