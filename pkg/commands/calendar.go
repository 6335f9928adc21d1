package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/commands/options"
	"tableflip.dev/oneframe/pkg/runner/month"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the days of a month that have an entry",
		Example: `
oneframe calendar
oneframe calendar --month 2025-02
oneframe calendar --open 2025-02-14
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mo.GetMonth()
			if err != nil {
				return err
			}
			open, err := mo.GetOpen()
			if err != nil {
				return err
			}
			if m.IsZero() && !open.IsZero() {
				m = open.FirstOfMonth()
			}
			s, err := openSession("calendar", false)
			if err != nil {
				return err
			}
			defer s.Close()
			r := month.Month{
				Month:       m,
				Open:        open,
				Locale:      s.cfg.Locale(),
				Out:         cmd.OutOrStdout(),
				Log:         s.log,
				Persistence: s.p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddMonthArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
