package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

func newRootCmdFor(app *app) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "prep",
		Short:         "prep: track exam syllabus progress and study todos",
		Long:          "prep keeps a per-exam syllabus checklist and a todo list on disk, and shows completion percentages per subject and per exam.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.open(cmd.Context(), *opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return app.close(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logs on stderr")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.prep/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newExamCmd(app),
		newProgressCmd(app),
		newTopicCmd(app),
		newTodoCmd(app),
		newTabCmd(app),
		newUICmd(app),
		newResetCmd(app),
	)
	closeOnError(rootCmd, app)

	return rootCmd
}

// closeOnError wraps every RunE below cmd so a failing command still closes
// app. Cobra skips PersistentPostRunE once RunE has returned an error.
func closeOnError(cmd *cobra.Command, app *app) {
	for _, child := range cmd.Commands() {
		closeOnError(child, app)
	}

	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if err := run(c, args); err != nil {
			return errors.Join(err, app.close(c.Context()))
		}

		return nil
	}
}
