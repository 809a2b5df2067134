package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trezcool/feeflow/core"
	"github.com/trezcool/feeflow/core/fee"
	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/payment"
	"github.com/trezcool/feeflow/core/student"
)

// PaymentRow is a payment with its references resolved for display.
type PaymentRow struct {
	payment.Payment
	StudentName string `json:"student_name"`
	FeeName     string `json:"fee_name"`
	Badge       Badge  `json:"badge"`
}

// InvoiceRow is an invoice with its student resolved and its display status computed.
type InvoiceRow struct {
	invoice.Invoice
	Number      string `json:"number"`
	StudentName string `json:"student_name"`
	Badge       Badge  `json:"badge"`
	Overdue     bool   `json:"overdue"`
	DaysOverdue int    `json:"days_overdue,omitempty"`
}

// InvoiceDetail is the full view of a single invoice.
// Fees that no longer exist are left out of Items.
type InvoiceDetail struct {
	InvoiceRow
	Student  *student.Student `json:"student"`
	Items    []fee.Fee        `json:"items"`
	Subtotal decimal.Decimal  `json:"items_subtotal"`
}

type PaymentFilter struct {
	Search string         `query:"search"`
	Status payment.Status `query:"status"`
}

func (pf *PaymentFilter) Clean() {
	pf.Search = core.CleanString(pf.Search)
}

// InvoiceFilter filters invoices on their stored status, or on "overdue".
type InvoiceFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

func (inf *InvoiceFilter) Clean() {
	inf.Search = core.CleanString(inf.Search)
}

func (snap *Snapshot) PaymentRow(pmt payment.Payment) PaymentRow {
	return PaymentRow{
		Payment:     pmt,
		StudentName: snap.StudentName(pmt.StudentID),
		FeeName:     snap.FeeName(pmt.FeeID),
		Badge:       PaymentBadge(pmt.Status),
	}
}

// PaymentRows lists the payments matching filter, in collection order.
// Search is case-insensitive on the student name, fee name or reference.
func (snap *Snapshot) PaymentRows(filter PaymentFilter) []PaymentRow {
	rows := make([]PaymentRow, 0, len(snap.Payments))
	for _, pmt := range snap.Payments {
		if filter.Status != "" && pmt.Status != filter.Status {
			continue
		}
		row := snap.PaymentRow(pmt)
		if !core.ContainsFold(filter.Search, row.StudentName, row.FeeName, pmt.Reference) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func (snap *Snapshot) InvoiceRow(inv invoice.Invoice, now time.Time) InvoiceRow {
	row := InvoiceRow{
		Invoice:     inv.Copy(),
		Number:      inv.Number(),
		StudentName: snap.StudentName(inv.StudentID),
		Badge:       InvoiceDisplayBadge(inv, now),
		Overdue:     IsOverdue(inv, now),
	}
	if row.Overdue {
		row.DaysOverdue = DaysOverdue(inv.DueDate, now)
	}
	return row
}

// InvoiceRows lists the invoices matching filter, in collection order.
// Search is case-insensitive on the student name.
func (snap *Snapshot) InvoiceRows(filter InvoiceFilter, now time.Time) []InvoiceRow {
	rows := make([]InvoiceRow, 0, len(snap.Invoices))
	for _, inv := range snap.Invoices {
		row := snap.InvoiceRow(inv, now)
		switch {
		case filter.Status == StatusOverdue && !row.Overdue:
			continue
		case filter.Status != "" && filter.Status != StatusOverdue && string(inv.Status) != filter.Status:
			continue
		case !core.ContainsFold(filter.Search, row.StudentName):
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func (snap *Snapshot) InvoiceDetail(inv invoice.Invoice, now time.Time) InvoiceDetail {
	detail := InvoiceDetail{
		InvoiceRow: snap.InvoiceRow(inv, now),
		Items:      make([]fee.Fee, 0, len(inv.Fees)),
		Subtotal:   decimal.Zero,
	}
	if std, ok := snap.Student(inv.StudentID); ok {
		detail.Student = &std
	}
	for _, id := range inv.Fees {
		if f, ok := snap.Fee(id); ok {
			detail.Items = append(detail.Items, f)
			detail.Subtotal = detail.Subtotal.Add(f.Amount)
		}
	}
	return detail
}
