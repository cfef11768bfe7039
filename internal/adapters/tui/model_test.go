package tui

import (
	"context"
	"testing"

	"github.com/bnema/prep/internal/adapters/kv/memory"
	"github.com/bnema/prep/internal/application"
	"github.com/bnema/prep/internal/domain"
	"github.com/bnema/prep/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	model    Model
	progress *store.Store[domain.ProgressState]
	todos    *store.Store[domain.TodoList]
	tabs     *store.Store[domain.Tab]
}

func openStore[T any](t *testing.T, cfg store.Config[T]) *store.Store[T] {
	t.Helper()

	s, err := store.Open(context.Background(), memory.NewStore(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close(context.Background())
	})

	return s
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	catalog := domain.Catalog{Exams: []domain.Exam{
		{ID: "ssc", Name: "SSC CGL", Subjects: []domain.Subject{
			{ID: "quant", Name: "Quant", Topics: []domain.Topic{{ID: "percentage", Name: "Percentage"}, {ID: "geometry", Name: "Geometry"}}},
			{ID: "english", Name: "English", Topics: []domain.Topic{{ID: "grammar", Name: "Grammar"}}},
		}},
		{ID: "upsc", Name: "UPSC", Subjects: []domain.Subject{
			{ID: "polity", Name: "Polity", Topics: []domain.Topic{{ID: "constitution"}}},
		}},
	}}

	f := fixture{
		progress: openStore(t, store.Config[domain.ProgressState]{Key: "syllabusProgress", Default: domain.ProgressState{}}),
		todos:    openStore(t, store.Config[domain.TodoList]{Key: "todos", Default: domain.TodoList{}}),
		tabs: openStore(t, store.Config[domain.Tab]{
			Key:     "activeTab",
			Default: domain.TabSyllabus,
			Codec:   store.StringCodec[domain.Tab]{Parse: domain.ParseTab},
		}),
	}
	f.model = NewModel(
		application.NewProgressTracker(f.progress, catalog),
		application.NewTodoManager(f.todos, nil, nil),
		application.NewTabSelector(f.tabs),
	)

	return f
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()

	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}

	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestModelTabKeyPersistsActiveTab(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, keyTab)
	assert.Equal(t, domain.TabTodo, f.tabs.Get())
	assert.Contains(t, m.View(), "No todos yet.")

	m = press(t, m, keyTab)
	assert.Equal(t, domain.TabSyllabus, f.tabs.Get())
	assert.Contains(t, m.View(), "SSC CGL")
}

func TestModelExpandAndToggleTopic(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, keyEnter)
	assert.Equal(t, domain.SubjectID("quant"), m.expanded)
	assert.Contains(t, m.View(), "Percentage")

	m = press(t, m, keyDown, keySpace)
	assert.True(t, f.progress.Get().Completed("ssc", "quant", "percentage"))
	assert.Contains(t, m.View(), "1 / 2 topics completed")

	m = press(t, m, keySpace)
	assert.False(t, f.progress.Get().Completed("ssc", "quant", "percentage"))

	m = press(t, m, keyDown, keyDown, keyEnter)
	assert.Equal(t, domain.SubjectID("english"), m.expanded)
}

func TestModelSwitchesExam(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, keyRight)
	exam, ok := m.progress.CurrentExam()
	require.True(t, ok)
	assert.Equal(t, domain.ExamID("upsc"), exam.ID)
	assert.Contains(t, m.View(), "exam 2/2")

	m = press(t, m, keyRight)
	exam, _ = m.progress.CurrentExam()
	assert.Equal(t, domain.ExamID("ssc"), exam.ID)
}

func TestModelAddToggleDeleteTodo(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, keyTab, runes("a"))
	require.True(t, m.adding)

	m = press(t, m, keyEnter)
	assert.True(t, m.adding)
	assert.Equal(t, "todo text is empty", m.status)

	m = press(t, m, runes("Write essay"), keyEnter)
	assert.False(t, m.adding)
	require.Len(t, f.todos.Get(), 1)
	assert.Equal(t, "Write essay", f.todos.Get()[0].Text)

	m = press(t, m, keySpace)
	assert.True(t, f.todos.Get()[0].Completed)
	assert.Contains(t, m.View(), "[x] Write essay")

	m = press(t, m, runes("d"))
	assert.Empty(t, f.todos.Get())
	assert.Equal(t, 0, m.cursor)
}

func TestModelEscCancelsAdd(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, keyTab, runes("a"), runes("draft"), keyEsc)

	assert.False(t, m.adding)
	assert.Empty(t, f.todos.Get())
}

func TestModelRefreshClampsCursor(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, keyDown)
	require.Equal(t, 1, m.cursor)

	next, _ := m.Update(refreshMsg{})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	m = press(t, m, keyDown, keyDown, keyDown)
	assert.Equal(t, 1, m.cursor)
}

func TestModelQuit(t *testing.T) {
	f := newFixture(t)

	_, cmd := f.model.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
