package dummydb

import (
	"context"

	"github.com/trezcool/feeflow/core/invoice"
)

type invoiceRepository struct {
	db *DB
}

var _ invoice.Repository = (*invoiceRepository)(nil) // interface compliance check

func NewInvoiceRepository(db *DB) invoice.Repository {
	return &invoiceRepository{db: db}
}

func (repo *invoiceRepository) QueryAllInvoices(ctx context.Context) ([]invoice.Invoice, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	return repo.db.invoice.all(), nil
}

func (repo *invoiceRepository) GetInvoiceByID(ctx context.Context, id int) (invoice.Invoice, error) {
	if err := repo.db.wait(ctx); err != nil {
		return invoice.Invoice{}, err
	}
	if inv, ok := repo.db.invoice.get(id); ok {
		return inv, nil
	}
	return invoice.Invoice{}, invoice.ErrNotFound
}

func (repo *invoiceRepository) CreateInvoice(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	if err := repo.db.wait(ctx); err != nil {
		return invoice.Invoice{}, err
	}
	return repo.db.invoice.insert(inv), nil
}

func (repo *invoiceRepository) UpdateInvoice(ctx context.Context, id int, ui invoice.UpdateInvoice) (invoice.Invoice, error) {
	if err := repo.db.wait(ctx); err != nil {
		return invoice.Invoice{}, err
	}
	if inv, ok := repo.db.invoice.update(id, ui.Apply); ok {
		return inv, nil
	}
	return invoice.Invoice{}, invoice.ErrNotFound
}

func (repo *invoiceRepository) DeleteInvoice(ctx context.Context, id int) (invoice.Invoice, error) {
	if err := repo.db.wait(ctx); err != nil {
		return invoice.Invoice{}, err
	}
	if inv, ok := repo.db.invoice.remove(id); ok {
		return inv, nil
	}
	return invoice.Invoice{}, invoice.ErrNotFound
}
