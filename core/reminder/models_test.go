package reminder

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/feeflow/core"
)

func intPtr(i int) *int { return &i }

var validate, translator = core.NewValidator()

func fieldErrors(t *testing.T, err error) map[string]string {
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok, "expected validator.ValidationErrors, got %T", err)
	errs := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		errs[fe.Field()] = fe.Translate(translator)
	}
	return errs
}

func validEmail() NewTemplate {
	return NewTemplate{
		Name:     "Upcoming",
		Type:     TypeEmail,
		Subject:  "Payment Reminder - {{feeName}}",
		Template: "Dear {{studentName}}",
		Schedule: NewSchedule{DaysBefore: intPtr(7), Frequency: FrequencyOnce},
	}
}

func TestNewTemplate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(nt *NewTemplate)
		wantErr map[string]string
	}{
		{name: "valid email", modify: func(nt *NewTemplate) {}},
		{
			name:   "sms without subject",
			modify: func(nt *NewTemplate) { nt.Type = TypeSMS; nt.Subject = "" },
		},
		{
			name:    "email without subject",
			modify:  func(nt *NewTemplate) { nt.Subject = "   " },
			wantErr: map[string]string{"subject": "this field is required"},
		},
		{
			name:    "blank name",
			modify:  func(nt *NewTemplate) { nt.Name = " \t" },
			wantErr: map[string]string{"name": "this field is required"},
		},
		{
			name:    "blank template",
			modify:  func(nt *NewTemplate) { nt.Template = "  \n " },
			wantErr: map[string]string{"template": "this field cannot be blank"},
		},
		{
			name:   "due date reminder",
			modify: func(nt *NewTemplate) { nt.Schedule.DaysBefore = intPtr(0) },
		},
		{
			name:   "after due date",
			modify: func(nt *NewTemplate) { nt.Schedule.DaysBefore = intPtr(-30) },
		},
		{
			name:    "missing days before",
			modify:  func(nt *NewTemplate) { nt.Schedule.DaysBefore = nil },
			wantErr: map[string]string{"days_before": "this field is required"},
		},
		{
			name:    "days before out of range",
			modify:  func(nt *NewTemplate) { nt.Schedule.DaysBefore = intPtr(31) },
			wantErr: map[string]string{"days_before": "days_before must be 30 or less"},
		},
		{
			name:    "unknown frequency",
			modify:  func(nt *NewTemplate) { nt.Schedule.Frequency = "hourly" },
			wantErr: map[string]string{"frequency": "frequency must be one of [once daily weekly]"},
		},
		{
			name:    "unknown type",
			modify:  func(nt *NewTemplate) { nt.Type = "fax" },
			wantErr: map[string]string{"type": "type must be one of [email sms]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := validEmail()
			tt.modify(&nt)
			assert.Equal(t, tt.wantErr, fieldErrors(t, nt.Validate(validate)))
		})
	}
}

func TestUpdateTemplate_Validate(t *testing.T) {
	orig := Template{
		ID:       1,
		Name:     "Upcoming",
		Type:     TypeSMS,
		Template: "Hi {{studentName}}",
		IsActive: true,
		Schedule: Schedule{DaysBefore: 0, Frequency: FrequencyOnce},
	}

	freq := FrequencyDaily
	ut := UpdateTemplate{Schedule: &UpdateSchedule{Frequency: &freq}}
	assert.NoError(t, ut.Validate(validate, orig), "a zero days_before stays valid")

	email := TypeEmail
	ut = UpdateTemplate{Type: &email}
	assert.Equal(t, map[string]string{"subject": "this field is required"}, fieldErrors(t, ut.Validate(validate, orig)),
		"switching to email requires a subject")

	ut = UpdateTemplate{Schedule: &UpdateSchedule{DaysBefore: intPtr(-31)}}
	assert.Equal(t, map[string]string{"days_before": "days_before must be -30 or greater"}, fieldErrors(t, ut.Validate(validate, orig)))
}

func TestUpdateTemplate_Apply(t *testing.T) {
	tmpl := Template{
		Name:     "Upcoming",
		Type:     TypeEmail,
		Subject:  "Reminder",
		Template: "Hi",
		IsActive: true,
		Schedule: Schedule{DaysBefore: 7, Frequency: FrequencyOnce},
	}

	freq := FrequencyWeekly
	UpdateTemplate{Schedule: &UpdateSchedule{Frequency: &freq}}.Apply(&tmpl)
	assert.Equal(t, Schedule{DaysBefore: 7, Frequency: FrequencyWeekly}, tmpl.Schedule)

	UpdateTemplate{Schedule: &UpdateSchedule{DaysBefore: intPtr(0)}}.Apply(&tmpl)
	assert.Equal(t, Schedule{DaysBefore: 0, Frequency: FrequencyWeekly}, tmpl.Schedule)

	name := "Renamed"
	UpdateTemplate{Name: &name}.Apply(&tmpl)
	assert.Equal(t, "Renamed", tmpl.Name)
	assert.Equal(t, "Reminder", tmpl.Subject)
}

func TestSchedule(t *testing.T) {
	assert.Equal(t, "7 days before due", Schedule{DaysBefore: 7}.Describe())
	assert.Equal(t, "3 days after due", Schedule{DaysBefore: -3}.Describe())
	assert.Equal(t, "on due date", Schedule{}.Describe())

	due := core.MustParseDate("2024-09-15")
	assert.Equal(t, "2024-09-08", Schedule{DaysBefore: 7}.SendDate(due).String())
	assert.Equal(t, "2024-09-18", Schedule{DaysBefore: -3}.SendDate(due).String())
}

func TestQueryFilter_Match(t *testing.T) {
	tmpl := Template{Name: "Overdue Notice", Type: TypeEmail, Template: "Your {{feeName}} is late"}

	assert.True(t, QueryFilter{}.Match(tmpl))
	assert.True(t, QueryFilter{Search: "notice"}.Match(tmpl))
	assert.True(t, QueryFilter{Search: "FEENAME"}.Match(tmpl))
	assert.False(t, QueryFilter{Search: "notice", Type: TypeSMS}.Match(tmpl))
	assert.False(t, QueryFilter{Search: "upcoming"}.Match(tmpl))
}
