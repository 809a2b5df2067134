package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the dashboard view.
type Summary struct {
	TotalCollected  decimal.Decimal `json:"total_collected"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	OverdueCount    int             `json:"overdue_count"`
	CollectionRate  decimal.Decimal `json:"collection_rate"`
	StudentCount    int             `json:"student_count"`
	RecentPayments  []PaymentRow    `json:"recent_payments"`
	OverdueInvoices []InvoiceRow    `json:"overdue_invoices"`
}

// Summarize computes the dashboard view as of now.
func (snap *Snapshot) Summarize(now time.Time) Summary {
	overdue := OverdueInvoices(snap.Invoices, now)

	sum := Summary{
		TotalCollected:  TotalCollected(snap.Payments),
		PendingAmount:   PendingAmount(snap.Invoices),
		OverdueCount:    len(overdue),
		CollectionRate:  CollectionRate(snap.Invoices),
		StudentCount:    len(snap.Students),
		RecentPayments:  make([]PaymentRow, 0, RecentPaymentsLimit),
		OverdueInvoices: make([]InvoiceRow, 0, OverdueListLimit),
	}
	for _, pmt := range RecentPayments(snap.Payments, RecentPaymentsLimit) {
		sum.RecentPayments = append(sum.RecentPayments, snap.PaymentRow(pmt))
	}
	for i, inv := range overdue {
		if i == OverdueListLimit {
			break
		}
		sum.OverdueInvoices = append(sum.OverdueInvoices, snap.InvoiceRow(inv, now))
	}
	return sum
}
