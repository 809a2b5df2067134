package echoapi

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/feeflow/core"
	"github.com/trezcool/feeflow/core/dashboard"
	"github.com/trezcool/feeflow/core/fee"
	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/student"
	exportsvc "github.com/trezcool/feeflow/services/export"
	"github.com/trezcool/feeflow/tests"
)

func mockNow(t *testing.T, now time.Time) {
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = time.Now })
}

func Test_invoiceApi_query(t *testing.T) {
	app := setup(t)
	now := time.Date(2024, time.January, 11, 15, 0, 0, 0, time.UTC)
	mockNow(t, now)

	emma := testutil.CreateStudent(t, app.stdRepo, "Emma Johnson", "emma@email.com", student.StatusActive)
	liam := testutil.CreateStudent(t, app.stdRepo, "Liam Smith", "liam@email.com", student.StatusActive)
	tuition := testutil.CreateFee(t, app.feeRepo, "Tuition Fee", "2500", fee.CategoryTuition)

	late := testutil.CreateInvoice(t, app.invRepo, emma.ID, []fee.Fee{tuition}, "2024-01-01", invoice.StatusUnpaid)
	paid := testutil.CreateInvoice(t, app.invRepo, liam.ID, []fee.Fee{tuition}, "2024-01-01", invoice.StatusPaid)
	partial := testutil.CreateInvoice(t, app.invRepo, 42, []fee.Fee{tuition}, "2024-02-01", invoice.StatusPartial)

	snap := dashboard.NewSnapshot(
		[]student.Student{emma, liam}, []fee.Fee{tuition}, nil, []invoice.Invoice{late, paid, partial},
	)
	lateRow := snap.InvoiceRow(late, now)
	paidRow := snap.InvoiceRow(paid, now)
	partialRow := snap.InvoiceRow(partial, now)

	require.True(t, lateRow.Overdue)
	require.Equal(t, 10, lateRow.DaysOverdue)
	require.Equal(t, dashboard.UnknownStudent, partialRow.StudentName)

	runHTTPTests(t, app, []httpTest{
		{name: "Get all", path: "/api/invoices", wantData: marchallList(t, lateRow, paidRow, partialRow)},
		{name: "status=overdue", path: "/api/invoices?status=overdue", wantData: marchallList(t, lateRow)},
		{name: "status=unpaid", path: "/api/invoices?status=unpaid", wantData: marchallList(t, lateRow)},
		{name: "status=partial", path: "/api/invoices?status=partial", wantData: marchallList(t, partialRow)},
		{name: "search=liam", path: "/api/invoices?search=liam", wantData: marchallList(t, paidRow)},
		{name: "search & status", path: "/api/invoices?search=liam&status=overdue", wantData: marchallList(t)},
	})

	rec := do(app, httpTest{path: "/api/invoices/export?status=overdue"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(exportsvc.InvoicesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"#0001", "Emma Johnson", "1", "2500", "2024-01-01", "2024-01-01", "Overdue", "10"}, rows[1])
}

func Test_invoiceApi_create(t *testing.T) {
	app := setup(t)
	tuition := testutil.CreateFee(t, app.feeRepo, "Tuition Fee", "2500", fee.CategoryTuition)
	books := testutil.CreateFee(t, app.feeRepo, "Books", "350.50", fee.CategoryBooks)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "no fees",
			method:   http.MethodPost,
			path:     "/api/invoices",
			body:     []byte(`{"student_id": 1, "fees": []}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"fees": "fees must contain at least 1 item"}),
		},
		{
			name:     "unknown fee",
			method:   http.MethodPost,
			path:     "/api/invoices",
			body:     []byte(`{"student_id": 1, "fees": [1, 9]}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"fees": "fee 9 does not exist"}),
		},
	})

	rec := do(app, httpTest{
		method: http.MethodPost,
		path:   "/api/invoices",
		body:   []byte(`{"student_id": 1, "fees": [2, 1, 2], "due_date": "2024-10-01"}`),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var inv invoice.Invoice
	decode(t, rec, &inv)
	assert.Equal(t, 1, inv.ID)
	assert.Equal(t, []int{books.ID, tuition.ID}, inv.Fees)
	assert.True(t, inv.TotalAmount.Equal(decimal.RequireFromString("2850.50")), inv.TotalAmount.String())
	assert.Equal(t, "2024-10-01", inv.DueDate.String())
	assert.Equal(t, invoice.StatusUnpaid, inv.Status)
	assert.Equal(t, core.DateOf(time.Now().UTC()), inv.CreatedDate)
}

func Test_invoiceApi_detail(t *testing.T) {
	app := setup(t)
	now := time.Date(2024, time.January, 11, 15, 0, 0, 0, time.UTC)
	mockNow(t, now)

	emma := testutil.CreateStudent(t, app.stdRepo, "Emma Johnson", "emma@email.com", student.StatusActive)
	tuition := testutil.CreateFee(t, app.feeRepo, "Tuition Fee", "2500", fee.CategoryTuition)
	books := testutil.CreateFee(t, app.feeRepo, "Books", "350.50", fee.CategoryBooks)
	inv := testutil.CreateInvoice(t, app.invRepo, emma.ID, []fee.Fee{tuition, books}, "2024-01-01", invoice.StatusUnpaid)

	rec := do(app, httpTest{path: "/api/invoices/1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var detail struct {
		ID          int             `json:"id"`
		Number      string          `json:"number"`
		StudentName string          `json:"student_name"`
		Overdue     bool            `json:"overdue"`
		DaysOverdue int             `json:"days_overdue"`
		Badge       dashboard.Badge `json:"badge"`
		Student     student.Student `json:"student"`
		Items       []fee.Fee       `json:"items"`
		Subtotal    decimal.Decimal `json:"items_subtotal"`
	}
	decode(t, rec, &detail)
	assert.Equal(t, inv.ID, detail.ID)
	assert.Equal(t, "#0001", detail.Number)
	assert.Equal(t, "Emma Johnson", detail.StudentName)
	assert.True(t, detail.Overdue)
	assert.Equal(t, 10, detail.DaysOverdue)
	assert.Equal(t, dashboard.StatusOverdue, detail.Badge.Status)
	assert.Equal(t, emma, detail.Student)
	assert.Len(t, detail.Items, 2)
	assert.True(t, detail.Subtotal.Equal(decimal.RequireFromString("2850.50")))

	paid := inv.Copy()
	paid.Status = invoice.StatusPaid

	runHTTPTests(t, app, []httpTest{
		{
			name:     "update (invalid status)",
			method:   http.MethodPatch,
			path:     "/api/invoices/1",
			body:     []byte(`{"status": "void"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"status": "status must be one of [unpaid partial paid]"}),
		},
		{
			name:     "update (fees are fixed)",
			method:   http.MethodPatch,
			path:     "/api/invoices/1",
			body:     []byte(`{"status": "paid", "fees": [1], "total_amount": 1}`),
			wantData: marchallObj(t, paid),
		},
		{name: "delete", method: http.MethodDelete, path: "/api/invoices/1", wantData: marchallObj(t, paid)},
		{name: "retrieve (deleted)", path: "/api/invoices/1", wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)},
	})
}
