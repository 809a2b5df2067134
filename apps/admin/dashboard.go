package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (cli *commandLine) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print the fee collection summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := cli.snapshot(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "loading snapshot")
			}
			sum := snap.Summarize(nowFunc())

			fmt.Fprintf(cli.out, "Total collected:  %s\n", cli.money(sum.TotalCollected))
			fmt.Fprintf(cli.out, "Pending amount:   %s\n", cli.money(sum.PendingAmount))
			fmt.Fprintf(cli.out, "Overdue invoices: %d\n", sum.OverdueCount)
			fmt.Fprintf(cli.out, "Collection rate:  %s\n", cli.percent(sum.CollectionRate))
			fmt.Fprintf(cli.out, "Students:         %d\n", sum.StudentCount)

			fmt.Fprintln(cli.out, "\nRecent payments")
			tw := newTable(cli.out, "DATE", "STUDENT", "FEE", "AMOUNT", "STATUS")
			for _, row := range sum.RecentPayments {
				printRow(tw, row.PaymentDate, row.StudentName, row.FeeName, cli.money(row.Amount), row.Badge.Label)
			}
			return tw.Flush()
		},
	}
}
