package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:          "oneframe",
		Short:        options.Wrap80("A photo diary for the command line, with a calendar and an emotion chart."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addCalendar(topLevel)
	addEmotions(topLevel)
	addRemove(topLevel)
	addVersion(topLevel)
}
