package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/trezcool/feeflow/core/dashboard"
	"github.com/trezcool/feeflow/core/reminder"
)

var (
	nowFunc = time.Now // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	sources   dashboard.Sources
	reminders *reminder.Service
	out       io.Writer
	printer   *message.Printer
}

func newCommandLine(sources dashboard.Sources, reminders *reminder.Service, out io.Writer) *commandLine {
	return &commandLine{
		sources:   sources,
		reminders: reminders,
		out:       out,
		printer:   message.NewPrinter(language.English),
	}
}

// run executes the command named by args (args[0] being the program name).
func (cli *commandLine) run(args []string) error {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "FeeFlow administration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Usage()
			return errHelp
		},
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)
	root.AddCommand(
		cli.dashboardCmd(),
		cli.overdueCmd(),
		cli.remindersCmd(),
		cli.exportCmd(),
	)

	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func (cli *commandLine) snapshot(ctx context.Context) (*dashboard.Snapshot, error) {
	return dashboard.Load(ctx, cli.sources)
}
