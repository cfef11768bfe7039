package domain

import (
	"strings"
	"time"
)

type TodoID string

type TodoItem struct {
	ID          TodoID     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// NewTodoItem trims text and returns ErrEmptyTodoText when nothing is left.
func NewTodoItem(id TodoID, text string, createdAt time.Time) (TodoItem, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return TodoItem{}, ErrEmptyTodoText
	}

	return TodoItem{
		ID:        id,
		Text:      trimmed,
		CreatedAt: createdAt,
	}, nil
}

// TodoList is ordered newest first.
type TodoList []TodoItem

// WithAdded returns a new list with item in front.
func (l TodoList) WithAdded(item TodoItem) TodoList {
	next := make(TodoList, 0, len(l)+1)
	next = append(next, item)
	return append(next, l...)
}

// WithToggled flips the completion of the item with id, stamping or clearing
// CompletedAt. The list is returned unchanged when id is unknown.
func (l TodoList) WithToggled(id TodoID, now time.Time) TodoList {
	idx := l.Index(id)
	if idx < 0 {
		return l
	}

	next := make(TodoList, len(l))
	copy(next, l)

	item := next[idx]
	item.Completed = !item.Completed
	if item.Completed {
		completedAt := now
		item.CompletedAt = &completedAt
	} else {
		item.CompletedAt = nil
	}
	next[idx] = item

	return next
}

// WithoutID drops the item with id, keeping the order of the rest.
func (l TodoList) WithoutID(id TodoID) TodoList {
	idx := l.Index(id)
	if idx < 0 {
		return l
	}

	next := make(TodoList, 0, len(l)-1)
	next = append(next, l[:idx]...)
	return append(next, l[idx+1:]...)
}

func (l TodoList) Index(id TodoID) int {
	for i, item := range l {
		if item.ID == id {
			return i
		}
	}

	return -1
}

func (l TodoList) Active() TodoList {
	return l.filter(false)
}

func (l TodoList) Completed() TodoList {
	return l.filter(true)
}

func (l TodoList) CompletionRate() int {
	return CompletionPercentage(len(l.Completed()), len(l))
}

func (l TodoList) filter(completed bool) TodoList {
	out := make(TodoList, 0, len(l))
	for _, item := range l {
		if item.Completed == completed {
			out = append(out, item)
		}
	}

	return out
}
