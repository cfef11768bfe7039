package cmd

import (
	"fmt"

	"github.com/bnema/prep/internal/domain"
	"github.com/spf13/cobra"
)

func newTopicCmd(app *app) *cobra.Command {
	topicCmd := &cobra.Command{
		Use:   "topic",
		Short: "Mark syllabus topics as completed",
	}

	topicCmd.AddCommand(newTopicToggleCmd(app))

	return topicCmd
}

func newTopicToggleCmd(app *app) *cobra.Command {
	var examID string

	cmd := &cobra.Command{
		Use:   "toggle SUBJECT TOPIC",
		Short: "Flip the completion of one topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ready(); err != nil {
				return err
			}
			if err := selectExam(app, examID); err != nil {
				return err
			}

			exam, ok := app.progress.CurrentExam()
			if !ok {
				return fmt.Errorf("toggle topic: %w", domain.ErrExamNotFound)
			}

			subjectID := domain.SubjectID(args[0])
			done, err := app.progress.ToggleCatalogTopic(exam.ID, subjectID, domain.TopicID(args[1]))
			if err != nil {
				return err
			}

			subject, _ := exam.Subject(subjectID)
			state := "not completed"
			if done {
				state = "completed"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s/%s/%s: %s (%s %d%%)\n",
				exam.ID, args[0], args[1], state,
				subjectID, app.progress.SubjectCompletionPercentage(subject),
			)
			return err
		},
	}

	cmd.Flags().StringVar(&examID, "exam", "", "Exam id (default: first exam of the catalog)")

	return cmd
}
