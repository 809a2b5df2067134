package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/feeflow/core"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var Statuses = []Status{StatusActive, StatusInactive}

type Student struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	EnrollmentDate core.Date `json:"enrollment_date"`
	Status         Status    `json:"status"`
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name           string    `json:"name" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	Phone          string    `json:"phone" validate:"required"`
	EnrollmentDate core.Date `json:"enrollment_date" validate:"required"`
	Status         Status    `json:"status" validate:"required,oneof=active inactive"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
	if ns.Status == "" {
		ns.Status = StatusActive
	}
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Nil fields are left untouched.
type UpdateStudent struct {
	Name           *string    `json:"name"`
	Email          *string    `json:"email"`
	Phone          *string    `json:"phone"`
	EnrollmentDate *core.Date `json:"enrollment_date"`
	Status         *Status    `json:"status"`
}

// Validate cleans the provided fields and validates them merged over origStd.
func (us *UpdateStudent) Validate(validate *validator.Validate, origStd Student) error {
	if us.Name != nil {
		name := core.CleanString(*us.Name)
		us.Name = &name
	}
	if us.Email != nil {
		email := core.CleanString(*us.Email, true /* lower */)
		us.Email = &email
	}
	if us.Phone != nil {
		phone := core.CleanString(*us.Phone)
		us.Phone = &phone
	}

	merged := origStd
	us.Apply(&merged)
	return validate.Struct(NewStudent{
		Name:           merged.Name,
		Email:          merged.Email,
		Phone:          merged.Phone,
		EnrollmentDate: merged.EnrollmentDate,
		Status:         merged.Status,
	})
}

// Apply merges the provided fields into std.
func (us UpdateStudent) Apply(std *Student) {
	if us.Name != nil {
		std.Name = *us.Name
	}
	if us.Email != nil {
		std.Email = *us.Email
	}
	if us.Phone != nil {
		std.Phone = *us.Phone
	}
	if us.EnrollmentDate != nil {
		std.EnrollmentDate = *us.EnrollmentDate
	}
	if us.Status != nil {
		std.Status = *us.Status
	}
}

type QueryFilter struct {
	Search string `query:"search"`
	Status Status `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// Match does a case-insensitive search on Name or Email, AND-ed with the status.
func (qf QueryFilter) Match(std Student) bool {
	if qf.Status != "" && std.Status != qf.Status {
		return false
	}
	return core.ContainsFold(qf.Search, std.Name, std.Email)
}
