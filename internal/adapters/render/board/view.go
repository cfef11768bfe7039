package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/prep/internal/application"
	"github.com/bnema/prep/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

type RenderOptions struct {
	Now time.Time
	// ExpandAll lists the topics of every subject; otherwise only the
	// Expanded subject shows its topics.
	ExpandAll bool
	Expanded  domain.SubjectID
	// Cursor highlights one row of SyllabusRows or TodoRows when ShowCursor
	// is set.
	Cursor     int
	ShowCursor bool
}

func (o RenderOptions) expanded(id domain.SubjectID) bool {
	return o.ExpandAll || (o.Expanded != "" && o.Expanded == id)
}

func (o RenderOptions) selected(row int) bool {
	return o.ShowCursor && o.Cursor == row
}

// Row is one selectable line of the syllabus board. Topic is empty on a
// subject row.
type Row struct {
	Subject domain.SubjectID
	Topic   domain.TopicID
}

// SyllabusRows lists the selectable rows of summary in display order.
func SyllabusRows(summary application.ExamSummary, opts RenderOptions) []Row {
	var rows []Row
	for _, subject := range summary.Subjects {
		rows = append(rows, Row{Subject: subject.Subject.ID})
		if !opts.expanded(subject.Subject.ID) {
			continue
		}
		for _, topic := range subject.Topics {
			rows = append(rows, Row{Subject: subject.Subject.ID, Topic: topic.Topic.ID})
		}
	}

	return rows
}

// TodoRows lists todo ids in display order: active first, then completed.
func TodoRows(summary application.TodoSummary) []domain.TodoID {
	rows := make([]domain.TodoID, 0, summary.Total)
	for _, item := range summary.Active {
		rows = append(rows, item.ID)
	}
	for _, item := range summary.Completed {
		rows = append(rows, item.ID)
	}

	return rows
}

// Syllabus renders the syllabus board without running a program.
func Syllabus(summary application.ExamSummary, opts RenderOptions) string {
	return syllabusView(summary, opts, newStyles())
}

// Todos renders the todo board without running a program.
func Todos(summary application.TodoSummary, opts RenderOptions) string {
	return todoView(summary, opts, newStyles())
}

func syllabusView(summary application.ExamSummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(examTitle(summary.Exam)),
		progressLine("overall:", summary.Completed, summary.Total, "topics", s),
	}

	if len(summary.Subjects) == 0 {
		lines = append(lines, s.empty.Render("No subjects in this exam."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	row := 0
	for _, subject := range summary.Subjects {
		block, next := subjectBlock(subject, opts, row, s)
		lines = append(lines, s.section.Render(block))
		row = next
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func subjectBlock(subject application.SubjectSummary, opts RenderOptions, row int, s styles) (string, int) {
	parts := []string{
		pointer(opts.selected(row), s) + s.subject.Render(displayName(subject.Subject.Name, string(subject.Subject.ID))),
		"  " + progressLine("", subject.Completed, subject.Total, "topics completed", s),
	}
	row++

	if opts.expanded(subject.Subject.ID) {
		for _, topic := range subject.Topics {
			parts = append(parts, "  "+pointer(opts.selected(row), s)+topicLine(topic, s))
			row++
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...), row
}

func topicLine(topic application.TopicStatus, s styles) string {
	name := displayName(topic.Topic.Name, string(topic.Topic.ID))
	if topic.Completed {
		return checkbox(true) + " " + s.done.Render(name)
	}

	return checkbox(false) + " " + s.detail.Render(name)
}

func todoView(summary application.TodoSummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Todos"),
		progressLine("completion:", len(summary.Completed), summary.Total, "done", s),
	}

	if summary.Total == 0 {
		lines = append(lines, s.empty.Render("No todos yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	now := opts.Now
	if now.IsZero() {
		now = summary.GeneratedAt
	}

	row := 0
	sections := []struct {
		title string
		items domain.TodoList
	}{
		{title: "Active", items: summary.Active},
		{title: "Completed", items: summary.Completed},
	}
	for _, section := range sections {
		parts := []string{s.header.Render(fmt.Sprintf("%s (%d)", section.title, len(section.items)))}
		if len(section.items) == 0 {
			parts = append(parts, "  "+s.empty.Render("nothing here"))
		}
		for _, item := range section.items {
			parts = append(parts, "  "+pointer(opts.selected(row), s)+todoLine(item, now, s))
			row++
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func todoLine(item domain.TodoItem, now time.Time, s styles) string {
	meta := "added " + formatDate(item.CreatedAt, now)
	text := s.detail.Render(item.Text)
	if item.Completed {
		text = s.done.Render(item.Text)
		if item.CompletedAt != nil {
			meta += ", done " + formatDate(*item.CompletedAt, now)
		}
	}

	return checkbox(item.Completed) + " " + text + " " + s.meta.Render("("+meta+")")
}

func examsView(overview []application.ExamSummary, s styles) string {
	lines := []string{
		s.title.Render("Exams"),
		s.header.Render(fmt.Sprintf("exams: %d", len(overview))),
	}

	if len(overview) == 0 {
		lines = append(lines, s.empty.Render("No exams in the catalog."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, exam := range overview {
		marker := " "
		if exam.Current {
			marker = "*"
		}
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			marker+" ",
			s.subject.Render(string(exam.Exam.ID)),
			" ",
			s.detail.Render(displayName(exam.Exam.Name, string(exam.Exam.ID))),
			" ",
			progressLine("", exam.Completed, exam.Total, "topics", s),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func progressLine(label string, completed, total int, unit string, s styles) string {
	percent := domain.CompletionPercentage(completed, total)
	percentStyle := lipgloss.NewStyle().Foreground(interpolateColor(float64(percent), 0, 100))

	parts := make([]string, 0, 7)
	if label != "" {
		parts = append(parts, s.header.Render(label), " ")
	}
	parts = append(parts,
		renderProgressBar(percent, barWidth, s),
		" ",
		percentStyle.Render(fmt.Sprintf("%3d%%", percent)),
		" ",
		s.meta.Render(fmt.Sprintf("%d / %d %s", completed, total, unit)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderProgressBar(percent int, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := width * clampPercent(percent) / 100
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func pointer(selected bool, s styles) string {
	if selected {
		return s.cursor.Render("> ")
	}
	return "  "
}

func examTitle(exam domain.Exam) string {
	name := displayName(exam.Name, string(exam.ID))
	if name == string(exam.ID) {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, exam.ID)
}

func displayName(name, id string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return id
}

func formatDate(at, now time.Time) string {
	if at.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	at = at.In(now.Location())
	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := at.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return at.Format("15:04")
	}
	if yearA == yearB {
		return at.Format("02 Jan")
	}

	return at.Format("02 Jan 2006")
}

// interpolateColor walks the 240..255 greyscale ramp so higher values read
// brighter.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	colorCode := int(240.0 + (255.0-240.0)*normalized)
	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
