package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/commands/options"
	"tableflip.dev/oneframe/pkg/runner/emotions"
)

func addEmotions(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "emotions",
		Short: "Chart how the recorded days felt",
		Example: `
oneframe emotions
oneframe emotions --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			s, err := openSession("emotions", false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()
			e := emotions.Emotions{JSON: oo.JSON, Out: cmd.OutOrStdout(), Log: s.log, Persistence: s.p}
			return oo.HandleError(e.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
