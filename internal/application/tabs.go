package application

import (
	"fmt"

	"github.com/bnema/prep/internal/domain"
	"github.com/bnema/prep/internal/ports"
)

var ErrUnknownTab = fmt.Errorf("unknown tab (want %q or %q)", domain.TabSyllabus, domain.TabTodo)

type TabSelector struct {
	store ports.ValueStore[domain.Tab]
}

func NewTabSelector(store ports.ValueStore[domain.Tab]) *TabSelector {
	return &TabSelector{store: store}
}

// Active never returns an unrecognised tab.
func (s *TabSelector) Active() domain.Tab {
	tab := s.store.Get()
	if !tab.Valid() {
		return domain.TabSyllabus
	}

	return tab
}

func (s *TabSelector) Select(tab domain.Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("select tab %q: %w", tab, ErrUnknownTab)
	}

	s.store.Set(tab)
	return nil
}

// Next switches to the other view and returns it.
func (s *TabSelector) Next() domain.Tab {
	next := s.Active().Next()
	s.store.Set(next)

	return next
}
