package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/prep/internal/adapters/render/board"
	"github.com/bnema/prep/internal/domain"
	"github.com/spf13/cobra"
)

func newTodoCmd(app *app) *cobra.Command {
	todoCmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the study todo list",
	}

	todoCmd.AddCommand(
		newTodoAddCmd(app),
		newTodoListCmd(app),
		newTodoToggleCmd(app),
		newTodoRemoveCmd(app),
	)

	return todoCmd
}

func newTodoAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a todo at the top of the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			item, ok := app.todos.Add(strings.Join(args, " "))
			if !ok {
				return fmt.Errorf("add todo: %w", domain.ErrEmptyTodoText)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s\n", shortID(item.ID), item.Text)
			return err
		},
	}
}

func newTodoListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show active and completed todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, app.todos.Todos())
			}

			rendered, err := board.RenderTodos(app.todos.Summary(), board.RenderOptions{Now: app.now()})
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newTodoToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle REF",
		Short: "Flip a todo between active and completed",
		Long:  "REF is a todo id, a unique id prefix, or a 1-based position in the list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			id, err := app.todos.Resolve(args[0])
			if err != nil {
				return err
			}
			app.todos.Toggle(id)

			item := app.todos.Todos()[app.todos.Todos().Index(id)]
			state := "active"
			if item.Completed {
				state = "completed"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", state, shortID(id), item.Text)
			return err
		},
	}
}

func newTodoRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm REF",
		Aliases: []string{"delete"},
		Short:   "Delete a todo",
		Long:    "REF is a todo id, a unique id prefix, or a 1-based position in the list.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			id, err := app.todos.Resolve(args[0])
			if err != nil {
				return err
			}
			app.todos.Delete(id)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", shortID(id))
			return err
		},
	}
}

func shortID(id domain.TodoID) string {
	const size = 8
	if len(id) <= size {
		return string(id)
	}

	return string(id[:size])
}
