package dashboard

import (
	"time"

	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/payment"
	"github.com/trezcool/feeflow/core/student"
)

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
	VariantDefault Variant = "default"

	// StatusOverdue is displayed in place of an invoice status once the invoice is overdue.
	StatusOverdue = "overdue"
)

type Badge struct {
	Status  string  `json:"status"`
	Variant Variant `json:"variant"`
	Label   string  `json:"label"`
}

func StudentBadge(status student.Status) Badge {
	switch status {
	case student.StatusActive:
		return Badge{string(status), VariantSuccess, "Active"}
	case student.StatusInactive:
		return Badge{string(status), VariantError, "Inactive"}
	}
	return unknownBadge(string(status))
}

func PaymentBadge(status payment.Status) Badge {
	switch status {
	case payment.StatusCompleted:
		return Badge{string(status), VariantSuccess, "Completed"}
	case payment.StatusPending:
		return Badge{string(status), VariantWarning, "Pending"}
	case payment.StatusFailed:
		return Badge{string(status), VariantError, "Failed"}
	}
	return unknownBadge(string(status))
}

func InvoiceBadge(status invoice.Status) Badge {
	switch status {
	case invoice.StatusPaid:
		return Badge{string(status), VariantSuccess, "Paid"}
	case invoice.StatusPartial:
		return Badge{string(status), VariantWarning, "Partial"}
	case invoice.StatusUnpaid:
		return Badge{string(status), VariantError, "Unpaid"}
	}
	return unknownBadge(string(status))
}

// InvoiceDisplayBadge shows "overdue" instead of the stored status of an overdue invoice.
func InvoiceDisplayBadge(inv invoice.Invoice, now time.Time) Badge {
	if IsOverdue(inv, now) {
		return Badge{StatusOverdue, VariantError, "Overdue"}
	}
	return InvoiceBadge(inv.Status)
}

func unknownBadge(status string) Badge {
	return Badge{status, VariantDefault, status}
}
