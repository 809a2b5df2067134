package invoice

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/trezcool/feeflow/core"
)

type Status string

const (
	StatusUnpaid  Status = "unpaid"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
)

var Statuses = []Status{StatusUnpaid, StatusPartial, StatusPaid}

// DefaultDueDays is the number of days until an invoice is due when no due date is given.
const DefaultDueDays = 30

type Invoice struct {
	ID        int   `json:"id"`
	StudentID int   `json:"student_id"`
	Fees      []int `json:"fees"`
	// TotalAmount is the sum of the fee amounts when the invoice was created.
	// It is not recomputed when fees change afterwards.
	TotalAmount decimal.Decimal `json:"total_amount"`
	DueDate     core.Date       `json:"due_date"`
	Status      Status          `json:"status"`
	CreatedDate core.Date       `json:"created_date"`
}

// Number is the display number of the invoice, e.g. "#0042".
func (inv Invoice) Number() string {
	return fmt.Sprintf("#%04d", inv.ID)
}

// Copy returns a deep copy of inv.
func (inv Invoice) Copy() Invoice {
	if inv.Fees != nil {
		fees := make([]int, len(inv.Fees))
		copy(fees, inv.Fees)
		inv.Fees = fees
	}
	return inv
}

// NewInvoice contains information needed to create a new Invoice.
type NewInvoice struct {
	StudentID int       `json:"student_id" validate:"required,gt=0"`
	Fees      []int     `json:"fees" validate:"required,min=1,dive,gt=0"`
	DueDate   core.Date `json:"due_date"`
	Status    Status    `json:"status" validate:"required,oneof=unpaid partial paid"`
}

func (ni *NewInvoice) Validate(validate *validator.Validate) error {
	ni.Fees = UniqueFees(ni.Fees)
	if ni.Status == "" {
		ni.Status = StatusUnpaid
	}
	return validate.Struct(ni)
}

// UpdateInvoice defines what information may be provided to modify an existing Invoice.
// The fee set and total are fixed at creation.
type UpdateInvoice struct {
	StudentID *int       `json:"student_id"`
	DueDate   *core.Date `json:"due_date"`
	Status    *Status    `json:"status"`
}

type updateInvoiceCheck struct {
	StudentID int       `json:"student_id" validate:"required,gt=0"`
	DueDate   core.Date `json:"due_date" validate:"required"`
	Status    Status    `json:"status" validate:"required,oneof=unpaid partial paid"`
}

// Validate validates the provided fields merged over origInv.
func (ui *UpdateInvoice) Validate(validate *validator.Validate, origInv Invoice) error {
	merged := origInv
	ui.Apply(&merged)
	return validate.Struct(updateInvoiceCheck{
		StudentID: merged.StudentID,
		DueDate:   merged.DueDate,
		Status:    merged.Status,
	})
}

// Apply merges the provided fields into inv.
func (ui UpdateInvoice) Apply(inv *Invoice) {
	if ui.StudentID != nil {
		inv.StudentID = *ui.StudentID
	}
	if ui.DueDate != nil {
		inv.DueDate = *ui.DueDate
	}
	if ui.Status != nil {
		inv.Status = *ui.Status
	}
}

// UniqueFees drops duplicate fee ids, keeping the first occurrence of each.
func UniqueFees(ids []int) []int {
	if ids == nil {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
