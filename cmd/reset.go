package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	resetProgress = "progress"
	resetTodos    = "todos"
	resetTab      = "tab"
	resetAll      = "all"
)

func newResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "reset progress|todos|tab|all",
		Short:     "Clear stored state back to its defaults",
		Long:      "reset removes the stored value for the syllabus progress, the todo list, the active tab, or all of them. The next run starts from the defaults.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{resetProgress, resetTodos, resetTab, resetAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			target := args[0]
			if target == resetProgress || target == resetAll {
				app.progressStore.Reset()
			}
			if target == resetTodos || target == resetAll {
				app.todoStore.Reset()
			}
			if target == resetTab || target == resetAll {
				app.tabStore.Reset()
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "reset %s\n", target)
			return err
		},
	}
}
