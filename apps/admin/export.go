package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/feeflow/core/dashboard"
	"github.com/trezcool/feeflow/core/payment"
	exportsvc "github.com/trezcool/feeflow/services/export"
)

func (cli *commandLine) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export payments or invoices as a spreadsheet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Usage()
			return errHelp
		},
	}
	cmd.AddCommand(cli.exportPaymentsCmd(), cli.exportInvoicesCmd())
	return cmd
}

func (cli *commandLine) exportPaymentsCmd() *cobra.Command {
	var filter dashboard.PaymentFilter
	var status, output string

	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Export payments (XLSX)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := cli.snapshot(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "loading snapshot")
			}
			filter.Status = payment.Status(status)
			filter.Clean()
			rows := snap.PaymentRows(filter)

			return cli.writeFile(output, len(rows), func(w io.Writer) error {
				return exportsvc.WritePayments(w, rows)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "payments.xlsx", "file to write")
	cmd.Flags().StringVarP(&filter.Search, "search", "s", "", "search on student name, fee name or reference")
	cmd.Flags().StringVar(&status, "status", "", "only export payments with this status")
	return cmd
}

func (cli *commandLine) exportInvoicesCmd() *cobra.Command {
	var filter dashboard.InvoiceFilter
	var output string

	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Export invoices with their display status (XLSX)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := cli.snapshot(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "loading snapshot")
			}
			filter.Clean()
			rows := snap.InvoiceRows(filter, nowFunc())

			return cli.writeFile(output, len(rows), func(w io.Writer) error {
				return exportsvc.WriteInvoices(w, rows)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "invoices.xlsx", "file to write")
	cmd.Flags().StringVarP(&filter.Search, "search", "s", "", "search on student name")
	cmd.Flags().StringVar(&filter.Status, "status", "", "only export invoices with this status (or overdue)")
	return cmd
}

func (cli *commandLine) writeFile(path string, count int, write func(w io.Writer) error) (err error) {
	if path == "" {
		return errors.New("an output file is required")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer func() {
		if cErr := f.Close(); err == nil {
			err = cErr
		}
	}()

	if err = write(f); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d rows written to %s\n", count, path)
	return nil
}
