package reminder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferencedVariables(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "none", text: "Hello there", want: []string{}},
		{name: "in order", text: "{{feeName}} for {{studentName}}", want: []string{"feeName", "studentName"}},
		{name: "spaces", text: "Hi {{ studentName }}", want: []string{"studentName"}},
		{name: "repeated", text: "{{amount}} / {{amount}}", want: []string{"amount"}},
		{name: "unknown kept", text: "{{nickname}}", want: []string{"nickname"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReferencedVariables(tt.text))
		})
	}
}

func TestInspect(t *testing.T) {
	in := Inspect(TypeSMS, "Hi {{studentName}}, {{nickname}} owes {{amount}}")
	assert.Equal(t, []string{"studentName", "nickname", "amount"}, in.Variables)
	assert.Equal(t, []string{"nickname"}, in.Unknown)
	assert.False(t, in.OverSMS)

	long := strings.Repeat("x", SMSLengthHint+1)
	assert.True(t, Inspect(TypeSMS, long).OverSMS)
	assert.False(t, Inspect(TypeEmail, long).OverSMS, "the hint only applies to sms")
}

func TestDefault(t *testing.T) {
	email := Default(TypeEmail)
	assert.Equal(t, "Payment Reminder - {{feeName}}", email.Subject)
	assert.Empty(t, Inspect(TypeEmail, email.Template).Unknown)

	sms := Default(TypeSMS)
	assert.Empty(t, sms.Subject)
	assert.False(t, Inspect(TypeSMS, sms.Template).OverSMS)
	assert.ElementsMatch(t, []string{VarStudentName, VarAmount, VarFeeName, VarDueDate, VarContactPhone}, ReferencedVariables(sms.Template))
}
