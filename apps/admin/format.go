package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/number"
)

// money formats an amount with thousands separators and cents, e.g. $2,500.00.
func (cli *commandLine) money(amount decimal.Decimal) string {
	return cli.printer.Sprintf("$%v", number.Decimal(amount.InexactFloat64(), number.Scale(2)))
}

func (cli *commandLine) percent(rate decimal.Decimal) string {
	return cli.printer.Sprintf("%v%%", number.Decimal(rate.InexactFloat64(), number.Scale(1)))
}

func newTable(w io.Writer, headers ...interface{}) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printRow(tw, headers...)
	return tw
}

func printRow(tw *tabwriter.Writer, cells ...interface{}) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, cell)
	}
	fmt.Fprintln(tw)
}
