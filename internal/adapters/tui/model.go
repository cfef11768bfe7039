// Package tui is the interactive terminal view over the syllabus tracker and
// the todo list.
package tui

import (
	"fmt"
	"strings"

	"github.com/bnema/prep/internal/adapters/render/board"
	"github.com/bnema/prep/internal/application"
	"github.com/bnema/prep/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// refreshMsg is posted whenever a watched store changes.
type refreshMsg struct{}

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hintStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	inputBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	panelStyle       = lipgloss.NewStyle().Padding(0, 1)
)

type Model struct {
	progress *application.ProgressTracker
	todos    *application.TodoManager
	tabs     *application.TabSelector

	keys  keyMap
	help  help.Model
	input textinput.Model

	adding   bool
	cursor   int
	expanded domain.SubjectID
	status   string
}

func NewModel(progress *application.ProgressTracker, todos *application.TodoManager, tabs *application.TabSelector) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "New todo..."
	input.CharLimit = 200

	return Model{
		progress: progress,
		todos:    todos,
		tabs:     tabs,
		keys:     newKeyMap(),
		help:     help.New(),
		input:    input,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case refreshMsg:
		m.clampCursor()
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if _, added := m.todos.Add(m.input.Value()); !added {
				m.status = "todo text is empty"
				return m, nil
			}
			m.stopAdding()
			m.cursor = 0
			return m, nil
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.status = ""
	m.input.SetValue("")
	m.input.Blur()
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.tabs.Next()
		m.cursor = 0
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	}

	if m.tabs.Active() == domain.TabTodo {
		return m.updateTodoKey(msg)
	}

	return m.updateSyllabusKey(msg), nil
}

func (m Model) updateSyllabusKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.PrevExam):
		m.shiftExam(-1)
	case key.Matches(msg, m.keys.NextExam):
		m.shiftExam(1)
	case key.Matches(msg, m.keys.Expand):
		if row, ok := m.syllabusRow(); ok {
			m.toggleExpanded(row.Subject)
		}
	case key.Matches(msg, m.keys.Toggle):
		row, ok := m.syllabusRow()
		if !ok {
			break
		}
		if row.Topic == "" {
			m.toggleExpanded(row.Subject)
			break
		}
		exam, _ := m.progress.CurrentExam()
		if _, err := m.progress.ToggleCatalogTopic(exam.ID, row.Subject, row.Topic); err != nil {
			m.status = err.Error()
		}
	}

	return m
}

func (m Model) updateTodoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.SetValue("")
		return m, tea.Batch(m.input.Focus(), textinput.Blink)
	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.todoRow(); ok {
			m.todos.Toggle(id)
		}
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.todoRow(); ok {
			m.todos.Delete(id)
			m.clampCursor()
		}
	}

	return m, nil
}

func (m *Model) shiftExam(delta int) {
	exams := m.progress.Catalog().Exams
	if len(exams) == 0 {
		return
	}

	current := 0
	if exam, ok := m.progress.CurrentExam(); ok {
		for i := range exams {
			if exams[i].ID == exam.ID {
				current = i
				break
			}
		}
	}

	next := (current + delta + len(exams)) % len(exams)
	if err := m.progress.SelectExam(exams[next].ID); err != nil {
		m.status = err.Error()
		return
	}
	m.cursor = 0
	m.expanded = ""
}

func (m *Model) toggleExpanded(subject domain.SubjectID) {
	if m.expanded == subject {
		m.expanded = ""
	} else {
		m.expanded = subject
	}
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	rows := m.rowCount()
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) rowCount() int {
	if m.tabs.Active() == domain.TabTodo {
		return len(board.TodoRows(m.todos.Summary()))
	}

	summary, err := m.progress.Summary()
	if err != nil {
		return 0
	}
	return len(board.SyllabusRows(summary, m.renderOptions()))
}

func (m Model) syllabusRow() (board.Row, bool) {
	summary, err := m.progress.Summary()
	if err != nil {
		return board.Row{}, false
	}

	rows := board.SyllabusRows(summary, m.renderOptions())
	if m.cursor < 0 || m.cursor >= len(rows) {
		return board.Row{}, false
	}
	return rows[m.cursor], true
}

func (m Model) todoRow() (domain.TodoID, bool) {
	rows := board.TodoRows(m.todos.Summary())
	if m.cursor < 0 || m.cursor >= len(rows) {
		return "", false
	}
	return rows[m.cursor], true
}

func (m Model) renderOptions() board.RenderOptions {
	return board.RenderOptions{
		Expanded:   m.expanded,
		Cursor:     m.cursor,
		ShowCursor: !m.adding,
	}
}

func (m Model) View() string {
	active := m.tabs.Active()
	parts := []string{tabBar(active), ""}

	if active == domain.TabTodo {
		parts = append(parts, board.Todos(m.todos.Summary(), m.renderOptions()))
		if m.adding {
			parts = append(parts, inputBoxStyle.Render("Add todo\n"+m.input.View()))
		}
	} else {
		parts = append(parts, m.syllabusView())
	}

	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, "", m.help.View(m.keys))

	return panelStyle.Render(strings.Join(parts, "\n"))
}

func (m Model) syllabusView() string {
	summary, err := m.progress.Summary()
	if err != nil {
		return hintStyle.Render("No exams in the catalog.")
	}

	exams := m.progress.Catalog().Exams
	position := 0
	for i := range exams {
		if exams[i].ID == summary.Exam.ID {
			position = i + 1
			break
		}
	}
	nav := hintStyle.Render(fmt.Sprintf("exam %d/%d  ←/→ to switch", position, len(exams)))

	return nav + "\n" + board.Syllabus(summary, m.renderOptions())
}

func tabBar(active domain.Tab) string {
	labels := []struct {
		tab   domain.Tab
		label string
	}{
		{tab: domain.TabSyllabus, label: "Syllabus"},
		{tab: domain.TabTodo, label: "Todo"},
	}

	rendered := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.tab == active {
			rendered = append(rendered, activeTabStyle.Render(l.label))
			continue
		}
		rendered = append(rendered, inactiveTabStyle.Render(l.label))
	}

	return strings.Join(rendered, hintStyle.Render("  |  "))
}
