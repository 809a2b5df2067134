package reminder

import (
	"regexp"
	"unicode/utf8"
)

// Template variables, written as {{name}} in a template text.
const (
	VarStudentName  = "studentName"
	VarFeeName      = "feeName"
	VarAmount       = "amount"
	VarDueDate      = "dueDate"
	VarDaysOverdue  = "daysOverdue"
	VarContactPhone = "contactPhone"

	// SMSLengthHint is the length of a single SMS segment.
	SMSLengthHint = 160
)

var (
	Variables = []string{VarStudentName, VarFeeName, VarAmount, VarDueDate, VarDaysOverdue, VarContactPhone}

	variableRegex = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)
)

const (
	defaultEmailSubject = "Payment Reminder - {{feeName}}"
	defaultEmailBody    = `Dear {{studentName}},

This is a reminder that your payment for {{feeName}} in the amount of ${{amount}} is due on {{dueDate}}.

Please make your payment at your earliest convenience.

If you have any questions, please contact us at {{contactPhone}}.

Thank you,
FeeFlow Team`
	defaultSMSBody = "Hi {{studentName}}, your payment of ${{amount}} for {{feeName}} is due {{dueDate}}. " +
		"Pay online or call {{contactPhone}}."
)

// DefaultContent is a ready-made subject and body for a template type.
type DefaultContent struct {
	Type     Type   `json:"type"`
	Subject  string `json:"subject"`
	Template string `json:"template"`
}

func Default(typ Type) DefaultContent {
	if typ == TypeSMS {
		return DefaultContent{Type: TypeSMS, Template: defaultSMSBody}
	}
	return DefaultContent{Type: TypeEmail, Subject: defaultEmailSubject, Template: defaultEmailBody}
}

func IsVariable(name string) bool {
	for _, v := range Variables {
		if v == name {
			return true
		}
	}
	return false
}

// ReferencedVariables lists the distinct variable names used in text, in order of first use.
func ReferencedVariables(text string) []string {
	matches := variableRegex.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

// Inspection describes the placeholders and length of a template text.
// Unknown variables are reported, not rejected.
type Inspection struct {
	Variables []string `json:"variables"`
	Unknown   []string `json:"unknown"`
	Length    int      `json:"length"`
	OverSMS   bool     `json:"over_sms_length"`
}

func Inspect(typ Type, text string) Inspection {
	in := Inspection{
		Variables: ReferencedVariables(text),
		Unknown:   []string{},
		Length:    utf8.RuneCountInString(text),
	}
	for _, name := range in.Variables {
		if !IsVariable(name) {
			in.Unknown = append(in.Unknown, name)
		}
	}
	in.OverSMS = typ == TypeSMS && in.Length > SMSLengthHint
	return in
}
