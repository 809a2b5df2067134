package echoapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/feeflow/core/dashboard"
	"github.com/trezcool/feeflow/core/fee"
	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/payment"
	"github.com/trezcool/feeflow/core/student"
	"github.com/trezcool/feeflow/tests"
)

func Test_dashboardApi_summary(t *testing.T) {
	app := setup(t)
	mockNow(t, time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC))

	emma := testutil.CreateStudent(t, app.stdRepo, "Emma Johnson", "emma@email.com", student.StatusActive)
	testutil.CreateStudent(t, app.stdRepo, "Liam Smith", "liam@email.com", student.StatusInactive)
	tuition := testutil.CreateFee(t, app.feeRepo, "Tuition Fee", "2500", fee.CategoryTuition)

	testutil.CreatePayment(t, app.pmtRepo, emma.ID, tuition.ID, "100", "2024-03-01", payment.StatusCompleted)
	testutil.CreatePayment(t, app.pmtRepo, emma.ID, tuition.ID, "50", "2024-03-05", payment.StatusCompleted)
	testutil.CreatePayment(t, app.pmtRepo, 42, tuition.ID, "30", "2024-03-03", payment.StatusPending)

	testutil.CreateInvoice(t, app.invRepo, emma.ID, []fee.Fee{tuition}, "2024-03-01", invoice.StatusUnpaid)
	testutil.CreateInvoice(t, app.invRepo, emma.ID, []fee.Fee{tuition}, "2024-03-01", invoice.StatusPaid)
	testutil.CreateInvoice(t, app.invRepo, emma.ID, []fee.Fee{tuition}, "2024-04-01", invoice.StatusPartial)

	rec := do(app, httpTest{path: "/api/dashboard"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var sum dashboard.Summary
	decode(t, rec, &sum)
	assert.True(t, sum.TotalCollected.Equal(decimal.NewFromInt(150)), sum.TotalCollected.String())
	assert.True(t, sum.PendingAmount.Equal(decimal.NewFromInt(5000)), sum.PendingAmount.String())
	assert.True(t, sum.CollectionRate.Equal(decimal.RequireFromString("33.3")), sum.CollectionRate.String())
	assert.Equal(t, 1, sum.OverdueCount)
	assert.Equal(t, 2, sum.StudentCount)

	require.Len(t, sum.RecentPayments, 3)
	assert.Equal(t, []string{"2024-03-05", "2024-03-03", "2024-03-01"}, []string{
		sum.RecentPayments[0].PaymentDate.String(),
		sum.RecentPayments[1].PaymentDate.String(),
		sum.RecentPayments[2].PaymentDate.String(),
	})
	assert.Equal(t, dashboard.UnknownStudent, sum.RecentPayments[1].StudentName)

	require.Len(t, sum.OverdueInvoices, 1)
	assert.Equal(t, "#0001", sum.OverdueInvoices[0].Number)
	assert.Equal(t, 9, sum.OverdueInvoices[0].DaysOverdue)
}

func Test_dashboardApi_empty(t *testing.T) {
	app := setup(t)

	runHTTPTests(t, app, []httpTest{
		{
			name: "no data",
			path: "/api/dashboard",
			wantData: []byte(`{
				"total_collected": 0,
				"pending_amount": 0,
				"overdue_count": 0,
				"collection_rate": 0,
				"student_count": 0,
				"recent_payments": [],
				"overdue_invoices": []
			}`),
		},
	})
}
