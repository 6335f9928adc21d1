package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/commands/options"
	"tableflip.dev/oneframe/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	oo := &options.OutputOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a diary entry",
		Example: `
oneframe add --image content://media/42 --emotion happy --title "Picnic"
oneframe add --image ~/Pictures/run.jpg -e tired --at 2025-02-28
oneframe add -i
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			if i.Interactive {
				return promptEntry(cmd, eo)
			}
			if eo.Image == "" {
				return errors.New("--image is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := eo.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			emotion, err := eo.GetEmotion()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession("add", false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			a := add.Add{
				ImageURI:    eo.Image,
				Emotion:     emotion,
				Title:       eo.Title,
				Content:     eo.Content,
				On:          on,
				JSON:        oo.JSON,
				Locale:      s.cfg.Locale(),
				Out:         cmd.OutOrStdout(),
				Persistence: s.p,
			}
			return oo.HandleError(a.Do(context.Background()))
		},
	}

	options.AddEntryArgs(cmd, eo)
	_ = cmd.RegisterFlagCompletionFunc("emotion", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return options.EmotionNames(), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, oo)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
