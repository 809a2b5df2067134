package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/feeflow/core/reminder"
)

func (cli *commandLine) remindersCmd() *cobra.Command {
	var filter reminder.QueryFilter
	var typ string

	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "List the reminder templates and their schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter.Type = reminder.Type(typ)
			filter.Clean()
			templates, err := cli.reminders.Filter(cmd.Context(), filter)
			if err != nil {
				return errors.Wrap(err, "querying reminder templates")
			}

			tw := newTable(cli.out, "ID", "NAME", "TYPE", "SCHEDULE", "FREQUENCY", "ACTIVE", "UNKNOWN VARIABLES")
			for _, tmpl := range templates {
				unknown := reminder.Inspect(tmpl.Type, tmpl.Subject+" "+tmpl.Template).Unknown
				printRow(tw, tmpl.ID, tmpl.Name, tmpl.Type, tmpl.Schedule.Describe(), tmpl.Schedule.Frequency, yesNo(tmpl.IsActive), len(unknown))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&filter.Search, "search", "s", "", "search on name or template text")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "only list templates of this type (email|sms)")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
