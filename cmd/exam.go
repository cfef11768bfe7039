package cmd

import (
	"github.com/bnema/prep/internal/adapters/render/board"
	"github.com/spf13/cobra"
)

func newExamCmd(app *app) *cobra.Command {
	examCmd := &cobra.Command{
		Use:   "exam",
		Short: "Inspect exams of the syllabus catalog",
	}

	examCmd.AddCommand(newExamListCmd(app))

	return examCmd
}

func newExamListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exams with their overall completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			overview := app.progress.Overview()
			if asJSON {
				return writeJSON(cmd, overview)
			}

			rendered, err := board.RenderExams(overview)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
