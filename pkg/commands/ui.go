package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the home screen",
		Example: `
oneframe ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession("ui", true)
			if err != nil {
				return err
			}
			defer s.Close()
			i := ui.UI{Locale: s.cfg.Locale(), Log: s.log, Persistence: s.p}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
