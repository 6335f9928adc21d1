package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/commands/options"
	"tableflip.dev/oneframe/pkg/runner/rm"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id>...",
		Short: "Delete diary entries",
		Example: `
oneframe rm 12
oneframe rm 12 13
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := options.ParseIDs(args)
			if err != nil {
				return err
			}
			s, err := openSession("rm", false)
			if err != nil {
				return err
			}
			defer s.Close()
			r := rm.Remove{IDs: ids, Out: cmd.OutOrStdout(), Persistence: s.p}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
