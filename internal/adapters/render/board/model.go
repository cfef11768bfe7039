package board

import (
	"errors"
	"io"

	"github.com/bnema/prep/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	content func(styles) string
	styles  styles
	output  string
}

func newModel(content func(styles) string) model {
	return model{
		content: content,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.content(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// RenderSyllabus draws the board of one exam.
func RenderSyllabus(summary application.ExamSummary, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return syllabusView(summary, opts, s)
	})
}

// RenderTodos draws the todo board.
func RenderTodos(summary application.TodoSummary, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return todoView(summary, opts, s)
	})
}

// RenderExams draws one line per exam of the catalog.
func RenderExams(overview []application.ExamSummary) (string, error) {
	return render(func(s styles) string {
		return examsView(overview, s)
	})
}

func render(content func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(content),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
