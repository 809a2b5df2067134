package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trezcool/feeflow/core"
	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/payment"
)

const (
	// RecentPaymentsLimit is the number of payments shown as "recent".
	RecentPaymentsLimit = 5
	// OverdueListLimit is the number of overdue invoices listed on the dashboard.
	OverdueListLimit = 5
)

var hundred = decimal.NewFromInt(100)

// TotalCollected sums the amounts of completed payments.
func TotalCollected(payments []payment.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, pmt := range payments {
		if pmt.Status == payment.StatusCompleted {
			total = total.Add(pmt.Amount)
		}
	}
	return total
}

// PendingAmount sums the totals of unpaid and partially paid invoices.
func PendingAmount(invoices []invoice.Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == invoice.StatusUnpaid || inv.Status == invoice.StatusPartial {
			total = total.Add(inv.TotalAmount)
		}
	}
	return total
}

// IsOverdue reports whether inv is not paid and its due date is before now.
func IsOverdue(inv invoice.Invoice, now time.Time) bool {
	return inv.Status != invoice.StatusPaid && inv.DueDate.Before(now)
}

// OverdueInvoices keeps the overdue invoices, in their original order.
func OverdueInvoices(invoices []invoice.Invoice, now time.Time) []invoice.Invoice {
	overdue := make([]invoice.Invoice, 0)
	for _, inv := range invoices {
		if IsOverdue(inv, now) {
			overdue = append(overdue, inv.Copy())
		}
	}
	return overdue
}

// CollectionRate is the percentage of paid invoices, rounded to one decimal.
// It is 0 when there are no invoices.
func CollectionRate(invoices []invoice.Invoice) decimal.Decimal {
	if len(invoices) == 0 {
		return decimal.Zero
	}
	var paid int64
	for _, inv := range invoices {
		if inv.Status == invoice.StatusPaid {
			paid++
		}
	}
	return decimal.NewFromInt(paid).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(len(invoices)))).
		Round(1)
}

// DaysOverdue is the number of whole days elapsed since dueDate.
func DaysOverdue(dueDate core.Date, now time.Time) int {
	return dueDate.DaysSince(now)
}

// RecentPayments returns the first `limit` payments sorted by payment date, latest first.
// The input slice is left untouched.
func RecentPayments(payments []payment.Payment, limit int) []payment.Payment {
	sorted := make([]payment.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PaymentDate.After(sorted[j].PaymentDate.Time)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
