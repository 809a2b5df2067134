package reminder

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/feeflow/core"
)

type (
	Type      string
	Frequency string
)

const (
	TypeEmail Type = "email"
	TypeSMS   Type = "sms"

	FrequencyOnce   Frequency = "once"
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"

	MinDaysBefore = -30
	MaxDaysBefore = 30
)

var (
	Types       = []Type{TypeEmail, TypeSMS}
	Frequencies = []Frequency{FrequencyOnce, FrequencyDaily, FrequencyWeekly}
)

// Schedule tells when a reminder goes out relative to the fee due date.
// A positive DaysBefore means before the due date, a negative one after it.
type Schedule struct {
	DaysBefore int       `json:"days_before"`
	Frequency  Frequency `json:"frequency"`
}

// Describe returns a human-readable form of the timing, e.g. "7 days before due".
func (s Schedule) Describe() string {
	switch {
	case s.DaysBefore > 0:
		return fmt.Sprintf("%d days before due", s.DaysBefore)
	case s.DaysBefore < 0:
		return fmt.Sprintf("%d days after due", -s.DaysBefore)
	default:
		return "on due date"
	}
}

// SendDate is the first day the reminder goes out for a fee due on dueDate.
func (s Schedule) SendDate(dueDate core.Date) core.Date {
	return dueDate.AddDays(-s.DaysBefore)
}

type Template struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      Type      `json:"type"`
	Subject   string    `json:"subject"`
	Template  string    `json:"template"`
	IsActive  bool      `json:"is_active"`
	Schedule  Schedule  `json:"schedule"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// NewSchedule is the schedule part of NewTemplate.
// DaysBefore is a pointer so that 0 (on the due date) is told apart from a missing value.
type NewSchedule struct {
	DaysBefore *int      `json:"days_before" validate:"required,min=-30,max=30"`
	Frequency  Frequency `json:"frequency" validate:"required,oneof=once daily weekly"`
}

// NewTemplate contains information needed to create a new reminder Template.
type NewTemplate struct {
	Name     string      `json:"name" validate:"required"`
	Type     Type        `json:"type" validate:"required,oneof=email sms"`
	Subject  string      `json:"subject" validate:"required_if=Type email"`
	Template string      `json:"template" validate:"required,notblank"`
	IsActive *bool       `json:"is_active"`
	Schedule NewSchedule `json:"schedule"`
}

func (nt *NewTemplate) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Subject = core.CleanString(nt.Subject)
	return validate.Struct(nt)
}

// UpdateSchedule is the schedule part of UpdateTemplate; nil fields are left untouched.
type UpdateSchedule struct {
	DaysBefore *int       `json:"days_before"`
	Frequency  *Frequency `json:"frequency"`
}

// UpdateTemplate defines what information may be provided to modify an existing Template.
// Nil fields are left untouched, and a provided schedule is merged field by field.
type UpdateTemplate struct {
	Name     *string         `json:"name"`
	Type     *Type           `json:"type"`
	Subject  *string         `json:"subject"`
	Template *string         `json:"template"`
	IsActive *bool           `json:"is_active"`
	Schedule *UpdateSchedule `json:"schedule"`
}

// Validate cleans the provided fields and validates them merged over origTmpl.
func (ut *UpdateTemplate) Validate(validate *validator.Validate, origTmpl Template) error {
	if ut.Name != nil {
		name := core.CleanString(*ut.Name)
		ut.Name = &name
	}
	if ut.Subject != nil {
		subject := core.CleanString(*ut.Subject)
		ut.Subject = &subject
	}

	merged := origTmpl
	ut.Apply(&merged)
	daysBefore := merged.Schedule.DaysBefore
	return validate.Struct(NewTemplate{
		Name:     merged.Name,
		Type:     merged.Type,
		Subject:  merged.Subject,
		Template: merged.Template,
		IsActive: &merged.IsActive,
		Schedule: NewSchedule{
			DaysBefore: &daysBefore,
			Frequency:  merged.Schedule.Frequency,
		},
	})
}

// Apply merges the provided fields into tmpl. UpdatedAt is left to the caller.
func (ut UpdateTemplate) Apply(tmpl *Template) {
	if ut.Name != nil {
		tmpl.Name = *ut.Name
	}
	if ut.Type != nil {
		tmpl.Type = *ut.Type
	}
	if ut.Subject != nil {
		tmpl.Subject = *ut.Subject
	}
	if ut.Template != nil {
		tmpl.Template = *ut.Template
	}
	if ut.IsActive != nil {
		tmpl.IsActive = *ut.IsActive
	}
	if ut.Schedule != nil {
		if ut.Schedule.DaysBefore != nil {
			tmpl.Schedule.DaysBefore = *ut.Schedule.DaysBefore
		}
		if ut.Schedule.Frequency != nil {
			tmpl.Schedule.Frequency = *ut.Schedule.Frequency
		}
	}
}

type QueryFilter struct {
	Search string `query:"search"`
	Type   Type   `query:"type"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Type == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// Match does a case-insensitive search on Name or Template, AND-ed with the type.
func (qf QueryFilter) Match(tmpl Template) bool {
	if qf.Type != "" && tmpl.Type != qf.Type {
		return false
	}
	return core.ContainsFold(qf.Search, tmpl.Name, tmpl.Template)
}
