package payment

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/trezcool/feeflow/core"
)

type (
	Method string
	Status string
)

const (
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
	MethodCheck    Method = "check"

	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var (
	Methods  = []Method{MethodCash, MethodCard, MethodTransfer, MethodCheck}
	Statuses = []Status{StatusPending, StatusCompleted, StatusFailed}
)

type Payment struct {
	ID          int             `json:"id"`
	StudentID   int             `json:"student_id"`
	FeeID       int             `json:"fee_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate core.Date       `json:"payment_date"`
	Method      Method          `json:"method"`
	Reference   string          `json:"reference"`
	Status      Status          `json:"status"`
}

// NewPayment contains information needed to record a new Payment.
type NewPayment struct {
	StudentID   int             `json:"student_id" validate:"required,gt=0"`
	FeeID       int             `json:"fee_id" validate:"required,gt=0"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	PaymentDate core.Date       `json:"payment_date" validate:"required"`
	Method      Method          `json:"method" validate:"required,oneof=cash card transfer check"`
	Reference   string          `json:"reference"`
	Status      Status          `json:"status" validate:"required,oneof=pending completed failed"`
}

func (np *NewPayment) Validate(validate *validator.Validate) error {
	np.Reference = core.CleanString(np.Reference)
	if np.Status == "" {
		np.Status = StatusCompleted
	}
	return validate.Struct(np)
}

// UpdatePayment defines what information may be provided to modify an existing Payment.
// Nil fields are left untouched; the identity never changes.
type UpdatePayment struct {
	StudentID   *int             `json:"student_id"`
	FeeID       *int             `json:"fee_id"`
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *core.Date       `json:"payment_date"`
	Method      *Method          `json:"method"`
	Reference   *string          `json:"reference"`
	Status      *Status          `json:"status"`
}

// Validate cleans the provided fields and validates them merged over origPmt.
func (up *UpdatePayment) Validate(validate *validator.Validate, origPmt Payment) error {
	if up.Reference != nil {
		ref := core.CleanString(*up.Reference)
		up.Reference = &ref
	}

	merged := origPmt
	up.Apply(&merged)
	return validate.Struct(NewPayment{
		StudentID:   merged.StudentID,
		FeeID:       merged.FeeID,
		Amount:      merged.Amount,
		PaymentDate: merged.PaymentDate,
		Method:      merged.Method,
		Reference:   merged.Reference,
		Status:      merged.Status,
	})
}

// Apply merges the provided fields into pmt.
func (up UpdatePayment) Apply(pmt *Payment) {
	if up.StudentID != nil {
		pmt.StudentID = *up.StudentID
	}
	if up.FeeID != nil {
		pmt.FeeID = *up.FeeID
	}
	if up.Amount != nil {
		pmt.Amount = *up.Amount
	}
	if up.PaymentDate != nil {
		pmt.PaymentDate = *up.PaymentDate
	}
	if up.Method != nil {
		pmt.Method = *up.Method
	}
	if up.Reference != nil {
		pmt.Reference = *up.Reference
	}
	if up.Status != nil {
		pmt.Status = *up.Status
	}
}
