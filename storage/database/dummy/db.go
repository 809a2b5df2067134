package dummydb

import (
	"context"
	"time"

	"github.com/trezcool/feeflow/core/fee"
	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/payment"
	"github.com/trezcool/feeflow/core/reminder"
	"github.com/trezcool/feeflow/core/student"
)

type (
	Options struct {
		// Latency is waited by every repository call before it touches a table.
		Latency time.Duration
		// Seed loads the embedded sample data.
		Seed bool
	}

	DB struct {
		latency  time.Duration
		student  *table[student.Student]
		fee      *table[fee.Fee]
		payment  *table[payment.Payment]
		invoice  *table[invoice.Invoice]
		reminder *table[reminder.Template]
	}
)

func Open(opts Options) (*DB, error) {
	db := &DB{
		latency: opts.Latency,
		student: newTable(
			func(s student.Student) int { return s.ID },
			func(s *student.Student, id int) { s.ID = id },
			nil,
		),
		fee: newTable(
			func(f fee.Fee) int { return f.ID },
			func(f *fee.Fee, id int) { f.ID = id },
			nil,
		),
		payment: newTable(
			func(p payment.Payment) int { return p.ID },
			func(p *payment.Payment, id int) { p.ID = id },
			nil,
		),
		invoice: newTable(
			func(inv invoice.Invoice) int { return inv.ID },
			func(inv *invoice.Invoice, id int) { inv.ID = id },
			invoice.Invoice.Copy,
		),
		reminder: newTable(
			func(t reminder.Template) int { return t.ID },
			func(t *reminder.Template, id int) { t.ID = id },
			nil,
		),
	}
	if opts.Seed {
		if err := db.seed(); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// wait holds the caller for the configured latency.
// A cancelled context returns early, before any table is touched.
func (db *DB) wait(ctx context.Context) error {
	if db.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(db.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
