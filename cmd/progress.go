package cmd

import (
	"github.com/bnema/prep/internal/adapters/render/board"
	"github.com/bnema/prep/internal/domain"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *app) *cobra.Command {
	var (
		examID string
		expand bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show the syllabus board of an exam",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.ready(); err != nil {
				return err
			}
			if err := selectExam(app, examID); err != nil {
				return err
			}

			summary, err := app.progress.Summary()
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, summary)
			}

			rendered, err := board.RenderSyllabus(summary, board.RenderOptions{ExpandAll: expand})
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().StringVar(&examID, "exam", "", "Exam id (default: first exam of the catalog)")
	cmd.Flags().BoolVar(&expand, "expand", false, "List every topic")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func selectExam(app *app, examID string) error {
	if examID == "" {
		return nil
	}

	return app.progress.SelectExam(domain.ExamID(examID))
}
