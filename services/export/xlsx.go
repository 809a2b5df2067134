package exportsvc

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/feeflow/core/dashboard"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	PaymentsSheet = "Payments"
	InvoicesSheet = "Invoices"

	defaultSheet = "Sheet1"
)

var (
	paymentHeaders = []interface{}{"ID", "Student", "Fee", "Amount", "Payment Date", "Method", "Reference", "Status"}
	invoiceHeaders = []interface{}{"Invoice", "Student", "Fees", "Total Amount", "Due Date", "Created", "Status", "Days Overdue"}
)

// WritePayments writes the rows as a single-sheet workbook.
func WritePayments(w io.Writer, rows []dashboard.PaymentRow) error {
	records := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		records = append(records, []interface{}{
			row.ID,
			row.StudentName,
			row.FeeName,
			row.Amount.InexactFloat64(),
			row.PaymentDate.String(),
			string(row.Method),
			row.Reference,
			row.Badge.Label,
		})
	}
	return writeSheet(w, PaymentsSheet, paymentHeaders, records)
}

// WriteInvoices writes the rows as a single-sheet workbook, with their display status.
func WriteInvoices(w io.Writer, rows []dashboard.InvoiceRow) error {
	records := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		records = append(records, []interface{}{
			row.Number,
			row.StudentName,
			len(row.Fees),
			row.TotalAmount.InexactFloat64(),
			row.DueDate.String(),
			row.CreatedDate.String(),
			row.Badge.Label,
			row.DaysOverdue,
		})
	}
	return writeSheet(w, InvoicesSheet, invoiceHeaders, records)
}

func writeSheet(w io.Writer, sheet string, headers []interface{}, records [][]interface{}) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cErr := f.Close(); err == nil {
			err = cErr
		}
	}()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return errors.Wrapf(err, "creating sheet %s", sheet)
	}
	f.SetActiveSheet(idx)
	if err = f.DeleteSheet(defaultSheet); err != nil {
		return errors.Wrap(err, "deleting default sheet")
	}

	if err = f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return errors.Wrap(err, "writing headers")
	}
	for i := range records {
		cell, cErr := excelize.CoordinatesToCellName(1, i+2)
		if cErr != nil {
			return cErr
		}
		if err = f.SetSheetRow(sheet, cell, &records[i]); err != nil {
			return errors.Wrapf(err, "writing row %d", i+2)
		}
	}

	return errors.Wrap(f.Write(w), "writing workbook")
}
