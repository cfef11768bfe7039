package cmd

import (
	"github.com/bnema/prep/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newUICmd(app *app) *cobra.Command {
	var examID string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive syllabus and todo view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.ready(); err != nil {
				return err
			}
			if err := selectExam(app, examID); err != nil {
				return err
			}

			model := tui.NewModel(app.progress, app.todos, app.tabs)
			return tui.Run(cmd.Context(), model,
				tui.WatchStore(app.progressStore),
				tui.WatchStore(app.todoStore),
				tui.WatchStore(app.tabStore),
			)
		},
	}

	cmd.Flags().StringVar(&examID, "exam", "", "Exam id to open (default: first exam of the catalog)")

	return cmd
}
