package application

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/prep/internal/domain"
	"github.com/bnema/prep/internal/ports"
)

// maxIDAttempts bounds regeneration when a generator repeats an id.
const maxIDAttempts = 8

type TodoManager struct {
	store ports.ValueStore[domain.TodoList]
	clock ports.Clock
	ids   ports.IDGenerator
}

func NewTodoManager(store ports.ValueStore[domain.TodoList], clock ports.Clock, ids ports.IDGenerator) *TodoManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ids == nil {
		ids = ports.UUIDGenerator{}
	}

	return &TodoManager{store: store, clock: clock, ids: ids}
}

// Add prepends a new todo. Blank text is ignored and reported with ok=false.
func (m *TodoManager) Add(text string) (domain.TodoItem, bool) {
	list := m.store.Get()

	item, err := domain.NewTodoItem(m.newID(list), text, m.clock.Now())
	if err != nil {
		return domain.TodoItem{}, false
	}

	m.store.Set(list.WithAdded(item))
	return item, true
}

// Toggle flips completion of id; it reports false when id is unknown.
func (m *TodoManager) Toggle(id domain.TodoID) bool {
	list := m.store.Get()
	if list.Index(id) < 0 {
		return false
	}

	m.store.Set(list.WithToggled(id, m.clock.Now()))
	return true
}

// Delete removes id; it reports false when id is unknown.
func (m *TodoManager) Delete(id domain.TodoID) bool {
	list := m.store.Get()
	if list.Index(id) < 0 {
		return false
	}

	m.store.Set(list.WithoutID(id))
	return true
}

func (m *TodoManager) Todos() domain.TodoList {
	return m.store.Get()
}

func (m *TodoManager) Active() domain.TodoList {
	return m.store.Get().Active()
}

func (m *TodoManager) Completed() domain.TodoList {
	return m.store.Get().Completed()
}

func (m *TodoManager) CompletionRate() int {
	return m.store.Get().CompletionRate()
}

func (m *TodoManager) Summary() TodoSummary {
	list := m.store.Get()

	return TodoSummary{
		Active:         list.Active(),
		Completed:      list.Completed(),
		Total:          len(list),
		CompletionRate: list.CompletionRate(),
		GeneratedAt:    m.clock.Now(),
	}
}

// Resolve maps a user supplied reference to a todo id. It accepts, in order:
// an exact id, a 1-based position in the list, or a unique id prefix.
func (m *TodoManager) Resolve(ref string) (domain.TodoID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("resolve todo: empty reference: %w", domain.ErrTodoNotFound)
	}

	list := m.store.Get()
	if list.Index(domain.TodoID(ref)) >= 0 {
		return domain.TodoID(ref), nil
	}

	if position, err := strconv.Atoi(ref); err == nil {
		if position >= 1 && position <= len(list) {
			return list[position-1].ID, nil
		}
	}

	var match domain.TodoID
	matches := 0
	for _, item := range list {
		if strings.HasPrefix(string(item.ID), ref) {
			match = item.ID
			matches++
		}
	}

	switch matches {
	case 0:
		return "", fmt.Errorf("resolve todo %q: %w", ref, domain.ErrTodoNotFound)
	case 1:
		return match, nil
	default:
		return "", fmt.Errorf("resolve todo %q: %d matches: %w", ref, matches, domain.ErrAmbiguousTodoRef)
	}
}

func (m *TodoManager) newID(list domain.TodoList) domain.TodoID {
	id := domain.TodoID(m.ids.NewID())
	for attempt := 1; attempt < maxIDAttempts && list.Index(id) >= 0; attempt++ {
		id = domain.TodoID(m.ids.NewID())
	}

	return id
}
