package cmd

import (
	"fmt"

	"github.com/bnema/prep/internal/domain"
	"github.com/spf13/cobra"
)

func newTabCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "tab [syllabus|todo]",
		Short:     "Print or set the view the interactive UI opens on",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.TabSyllabus), string(domain.TabTodo)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			if len(args) == 1 {
				if err := app.tabs.Select(domain.Tab(args[0])); err != nil {
					return err
				}
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.tabs.Active())
			return err
		},
	}
}
