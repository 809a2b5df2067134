package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trezcool/feeflow/core"
	"github.com/trezcool/feeflow/core/fee"
	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/payment"
	"github.com/trezcool/feeflow/core/reminder"
	"github.com/trezcool/feeflow/core/student"
)

func CreateStudent(t *testing.T, repo student.Repository, name, email string, status student.Status) student.Student {
	std, err := repo.CreateStudent(context.Background(), student.Student{
		Name:           name,
		Email:          email,
		Phone:          "(555) 010-0000",
		EnrollmentDate: core.NewDate(2024, time.January, 8),
		Status:         status,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return std
}

func CreateFee(t *testing.T, repo fee.Repository, name, amount string, category fee.Category, frequency ...fee.Frequency) fee.Fee {
	f := fee.Fee{
		Name:     name,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		DueDate:  core.NewDate(2024, time.September, 15),
	}
	if len(frequency) > 0 {
		f.Recurring = true
		f.Frequency = frequency[0]
	}
	f, err := repo.CreateFee(context.Background(), f)
	if err != nil {
		t.Fatalf("CreateFee() failed: %v", err)
	}
	return f
}

func CreatePayment(
	t *testing.T,
	repo payment.Repository,
	studentID, feeID int,
	amount, date string,
	status payment.Status,
	reference ...string,
) payment.Payment {
	pmt := payment.Payment{
		StudentID:   studentID,
		FeeID:       feeID,
		Amount:      decimal.RequireFromString(amount),
		PaymentDate: core.MustParseDate(date),
		Method:      payment.MethodCard,
		Status:      status,
	}
	if len(reference) > 0 {
		pmt.Reference = reference[0]
	}
	pmt, err := repo.CreatePayment(context.Background(), pmt)
	if err != nil {
		t.Fatalf("CreatePayment() failed: %v", err)
	}
	return pmt
}

func CreateInvoice(
	t *testing.T,
	repo invoice.Repository,
	studentID int,
	fees []fee.Fee,
	dueDate string,
	status invoice.Status,
) invoice.Invoice {
	inv := invoice.Invoice{
		StudentID:   studentID,
		Fees:        make([]int, 0, len(fees)),
		TotalAmount: decimal.Zero,
		DueDate:     core.MustParseDate(dueDate),
		Status:      status,
		CreatedDate: core.NewDate(2024, time.January, 1),
	}
	for _, f := range fees {
		inv.Fees = append(inv.Fees, f.ID)
		inv.TotalAmount = inv.TotalAmount.Add(f.Amount)
	}
	inv, err := repo.CreateInvoice(context.Background(), inv)
	if err != nil {
		t.Fatalf("CreateInvoice() failed: %v", err)
	}
	return inv
}

func CreateReminder(
	t *testing.T,
	repo reminder.Repository,
	name string,
	typ reminder.Type,
	daysBefore int,
	isActive bool,
) reminder.Template {
	tstamp := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	tmpl := reminder.Template{
		Name:      name,
		Type:      typ,
		Template:  "Hi {{studentName}}, {{feeName}} is due {{dueDate}}.",
		IsActive:  isActive,
		Schedule:  reminder.Schedule{DaysBefore: daysBefore, Frequency: reminder.FrequencyOnce},
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if typ == reminder.TypeEmail {
		tmpl.Subject = "Payment Reminder - {{feeName}}"
	}
	tmpl, err := repo.CreateTemplate(context.Background(), tmpl)
	if err != nil {
		t.Fatalf("CreateReminder() failed: %v", err)
	}
	return tmpl
}
