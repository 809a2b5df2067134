package dummydb

import (
	"context"

	"github.com/trezcool/feeflow/core/payment"
)

type paymentRepository struct {
	db *DB
}

var _ payment.Repository = (*paymentRepository)(nil) // interface compliance check

func NewPaymentRepository(db *DB) payment.Repository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) QueryAllPayments(ctx context.Context) ([]payment.Payment, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	return repo.db.payment.all(), nil
}

func (repo *paymentRepository) GetPaymentByID(ctx context.Context, id int) (payment.Payment, error) {
	if err := repo.db.wait(ctx); err != nil {
		return payment.Payment{}, err
	}
	if pmt, ok := repo.db.payment.get(id); ok {
		return pmt, nil
	}
	return payment.Payment{}, payment.ErrNotFound
}

func (repo *paymentRepository) CreatePayment(ctx context.Context, pmt payment.Payment) (payment.Payment, error) {
	if err := repo.db.wait(ctx); err != nil {
		return payment.Payment{}, err
	}
	return repo.db.payment.insert(pmt), nil
}

func (repo *paymentRepository) UpdatePayment(ctx context.Context, id int, up payment.UpdatePayment) (payment.Payment, error) {
	if err := repo.db.wait(ctx); err != nil {
		return payment.Payment{}, err
	}
	if pmt, ok := repo.db.payment.update(id, up.Apply); ok {
		return pmt, nil
	}
	return payment.Payment{}, payment.ErrNotFound
}

func (repo *paymentRepository) DeletePayment(ctx context.Context, id int) (payment.Payment, error) {
	if err := repo.db.wait(ctx); err != nil {
		return payment.Payment{}, err
	}
	if pmt, ok := repo.db.payment.remove(id); ok {
		return pmt, nil
	}
	return payment.Payment{}, payment.ErrNotFound
}
