package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/commands/options"
	"tableflip.dev/oneframe/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every diary entry",
		Example: `
oneframe list
oneframe list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			s, err := openSession("list", false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()
			l := list.List{JSON: oo.JSON, Out: cmd.OutOrStdout(), Persistence: s.p}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
