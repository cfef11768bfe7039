package tui

import (
	"context"
	"fmt"

	"github.com/bnema/prep/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

// Watch registers fn to run after every change of a store and returns the
// matching unsubscribe func.
type Watch func(fn func()) func()

func WatchStore[T any](s ports.ValueStore[T]) Watch {
	return func(fn func()) func() {
		return s.Subscribe(func(T) { fn() })
	}
}

// Run blocks until the user quits or ctx is done.
func Run(ctx context.Context, m Model, watches ...Watch) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	for _, watch := range watches {
		// Listeners fire inside Update, so the message is posted from
		// another goroutine; Send returns once the program has exited.
		unsubscribe := watch(func() {
			go p.Send(refreshMsg{})
		})
		defer unsubscribe()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	return nil
}
