package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/commands/options"
	"tableflip.dev/oneframe/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one diary entry",
		Example: `
oneframe show 12
oneframe show 12 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			ids, err := options.ParseIDs(args)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession("show", false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()
			sh := show.Show{
				ID:          ids[0],
				JSON:        oo.JSON,
				Locale:      s.cfg.Locale(),
				Out:         cmd.OutOrStdout(),
				Persistence: s.p,
			}
			return oo.HandleError(sh.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
