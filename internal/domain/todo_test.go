package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTodoItemTrimsText(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	item, err := NewTodoItem("1", "  Write essay \n", createdAt)
	require.NoError(t, err)
	assert.Equal(t, TodoItem{ID: "1", Text: "Write essay", CreatedAt: createdAt}, item)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := NewTodoItem("2", text, createdAt)
		assert.ErrorIs(t, err, ErrEmptyTodoText)
	}
}

func TestTodoListWithAddedPrepends(t *testing.T) {
	t.Parallel()

	var list TodoList
	list = list.WithAdded(TodoItem{ID: "1", Text: "first"})
	list = list.WithAdded(TodoItem{ID: "2", Text: "second"})

	require.Len(t, list, 2)
	assert.Equal(t, TodoID("2"), list[0].ID)
	assert.Equal(t, TodoID("1"), list[1].ID)
}

func TestTodoListWithToggledStampsAndClearsCompletedAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)
	list := TodoList{{ID: "a", Text: "a"}, {ID: "b", Text: "b"}, {ID: "c", Text: "c"}}

	done := list.WithToggled("b", now)
	require.True(t, done[1].Completed)
	require.NotNil(t, done[1].CompletedAt)
	assert.True(t, now.Equal(*done[1].CompletedAt))
	assert.Equal(t, []TodoID{"a", "b", "c"}, ids(done))

	// the snapshot is untouched
	assert.False(t, list[1].Completed)
	assert.Nil(t, list[1].CompletedAt)

	undone := done.WithToggled("b", now.Add(time.Hour))
	assert.False(t, undone[1].Completed)
	assert.Nil(t, undone[1].CompletedAt)
}

func TestTodoListUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	list := TodoList{{ID: "a", Text: "a"}, {ID: "b", Text: "b"}}

	assert.Equal(t, list, list.WithToggled("missing", time.Now()))
	assert.Equal(t, list, list.WithoutID("missing"))
}

func TestTodoListWithoutIDKeepsOrder(t *testing.T) {
	t.Parallel()

	list := TodoList{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	next := list.WithoutID("b")

	assert.Equal(t, []TodoID{"a", "c", "d"}, ids(next))
	assert.Equal(t, []TodoID{"a", "b", "c", "d"}, ids(list))
}

func TestTodoListDerivedViews(t *testing.T) {
	t.Parallel()

	list := TodoList{
		{ID: "a", Completed: true},
		{ID: "b"},
		{ID: "c", Completed: true},
		{ID: "d"},
		{ID: "e"},
	}

	assert.Equal(t, []TodoID{"b", "d", "e"}, ids(list.Active()))
	assert.Equal(t, []TodoID{"a", "c"}, ids(list.Completed()))
	assert.Equal(t, 40, list.CompletionRate())
	assert.Equal(t, 0, TodoList{}.CompletionRate())
	assert.Equal(t, 0, TodoList(nil).CompletionRate())
}

func TestTodoListJSONRoundTripPreservesInstants(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("IST", 5*3600+1800)
	createdAt := time.Date(2026, 10, 19, 9, 15, 30, 123456789, loc)
	completedAt := createdAt.Add(90 * time.Minute)
	list := TodoList{
		{ID: "b", Text: "done", Completed: true, CreatedAt: createdAt, CompletedAt: &completedAt},
		{ID: "a", Text: "open", CreatedAt: createdAt.Add(-time.Hour)},
	}

	data, err := json.Marshal(list)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw[0], "completedAt")
	assert.NotContains(t, raw[1], "completedAt")

	var decoded TodoList
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, len(list))

	for i := range list {
		assert.Equal(t, list[i].ID, decoded[i].ID)
		assert.Equal(t, list[i].Text, decoded[i].Text)
		assert.Equal(t, list[i].Completed, decoded[i].Completed)
		assert.True(t, list[i].CreatedAt.Equal(decoded[i].CreatedAt))
		if list[i].CompletedAt == nil {
			assert.Nil(t, decoded[i].CompletedAt)
			continue
		}
		require.NotNil(t, decoded[i].CompletedAt)
		assert.True(t, list[i].CompletedAt.Equal(*decoded[i].CompletedAt))
	}
}

func ids(list TodoList) []TodoID {
	out := make([]TodoID, 0, len(list))
	for _, item := range list {
		out = append(out, item.ID)
	}
	return out
}
