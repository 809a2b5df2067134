package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/feeflow/core/dashboard"
)

func (cli *commandLine) overdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List every overdue invoice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := cli.snapshot(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "loading snapshot")
			}

			rows := snap.InvoiceRows(dashboard.InvoiceFilter{Status: dashboard.StatusOverdue}, nowFunc())
			if len(rows) == 0 {
				fmt.Fprintln(cli.out, "No overdue invoices.")
				return nil
			}

			tw := newTable(cli.out, "INVOICE", "STUDENT", "AMOUNT", "DUE", "DAYS OVERDUE")
			for _, row := range rows {
				printRow(tw, row.Number, row.StudentName, cli.money(row.TotalAmount), row.DueDate, row.DaysOverdue)
			}
			return tw.Flush()
		},
	}
}
