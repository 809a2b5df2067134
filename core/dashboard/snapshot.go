package dashboard

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/feeflow/core/fee"
	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/payment"
	"github.com/trezcool/feeflow/core/student"
)

const (
	UnknownStudent = "Unknown Student"
	UnknownFee     = "Unknown Fee"
)

type (
	StudentLister interface {
		QueryAll(ctx context.Context) ([]student.Student, error)
	}
	FeeLister interface {
		QueryAll(ctx context.Context) ([]fee.Fee, error)
	}
	PaymentLister interface {
		QueryAll(ctx context.Context) ([]payment.Payment, error)
	}
	InvoiceLister interface {
		QueryAll(ctx context.Context) ([]invoice.Invoice, error)
	}

	// Sources are the collections a Snapshot is read from.
	Sources struct {
		Students StudentLister
		Fees     FeeLister
		Payments PaymentLister
		Invoices InvoiceLister
	}
)

// Snapshot holds the four collections the derived views are computed from.
// The collections are read independently and may not be mutually consistent.
type Snapshot struct {
	Students []student.Student
	Fees     []fee.Fee
	Payments []payment.Payment
	Invoices []invoice.Invoice

	studentsByID map[int]student.Student
	feesByID     map[int]fee.Fee
}

// Load reads all four collections concurrently.
// The first failure cancels the other reads and is returned.
func Load(ctx context.Context, src Sources) (*Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.Students, err = src.Students.QueryAll(ctx)
		return errors.Wrap(err, "loading students")
	})
	g.Go(func() (err error) {
		snap.Fees, err = src.Fees.QueryAll(ctx)
		return errors.Wrap(err, "loading fees")
	})
	g.Go(func() (err error) {
		snap.Payments, err = src.Payments.QueryAll(ctx)
		return errors.Wrap(err, "loading payments")
	})
	g.Go(func() (err error) {
		snap.Invoices, err = src.Invoices.QueryAll(ctx)
		return errors.Wrap(err, "loading invoices")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	snap.index()
	return &snap, nil
}

// NewSnapshot builds a Snapshot from collections already in hand.
func NewSnapshot(students []student.Student, fees []fee.Fee, payments []payment.Payment, invoices []invoice.Invoice) *Snapshot {
	snap := &Snapshot{Students: students, Fees: fees, Payments: payments, Invoices: invoices}
	snap.index()
	return snap
}

func (snap *Snapshot) index() {
	snap.studentsByID = make(map[int]student.Student, len(snap.Students))
	for _, std := range snap.Students {
		snap.studentsByID[std.ID] = std
	}
	snap.feesByID = make(map[int]fee.Fee, len(snap.Fees))
	for _, f := range snap.Fees {
		snap.feesByID[f.ID] = f
	}
}

func (snap *Snapshot) Student(id int) (student.Student, bool) {
	std, ok := snap.studentsByID[id]
	return std, ok
}

func (snap *Snapshot) Fee(id int) (fee.Fee, bool) {
	f, ok := snap.feesByID[id]
	return f, ok
}

// StudentName resolves a student id, falling back to UnknownStudent for dangling references.
func (snap *Snapshot) StudentName(id int) string {
	if std, ok := snap.studentsByID[id]; ok {
		return std.Name
	}
	return UnknownStudent
}

// FeeName resolves a fee id, falling back to UnknownFee for dangling references.
func (snap *Snapshot) FeeName(id int) string {
	if f, ok := snap.feesByID[id]; ok {
		return f.Name
	}
	return UnknownFee
}
