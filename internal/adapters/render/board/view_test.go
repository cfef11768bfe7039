package board

import (
	"testing"
	"time"

	"github.com/bnema/prep/internal/application"
	"github.com/bnema/prep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quantSummary() application.ExamSummary {
	return application.ExamSummary{
		Exam:      domain.Exam{ID: "ssc", Name: "SSC CGL"},
		Current:   true,
		Completed: 1,
		Total:     6,
		Percent:   17,
		Subjects: []application.SubjectSummary{
			{
				Subject:   domain.Subject{ID: "quant", Name: "Quantitative Aptitude"},
				Completed: 1,
				Total:     4,
				Percent:   25,
				Topics: []application.TopicStatus{
					{Topic: domain.Topic{ID: "percentage", Name: "Percentage"}, Completed: true},
					{Topic: domain.Topic{ID: "profit-loss", Name: "Profit and Loss"}},
					{Topic: domain.Topic{ID: "time-work", Name: "Time and Work"}},
					{Topic: domain.Topic{ID: "geometry"}},
				},
			},
			{
				Subject: domain.Subject{ID: "english", Name: "English"},
				Total:   2,
				Topics: []application.TopicStatus{
					{Topic: domain.Topic{ID: "grammar", Name: "Grammar"}},
					{Topic: domain.Topic{ID: "vocabulary", Name: "Vocabulary"}},
				},
			},
		},
	}
}

func TestRenderSyllabusCollapsed(t *testing.T) {
	output, err := RenderSyllabus(quantSummary(), RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "SSC CGL (ssc)")
	assert.Contains(t, output, "overall:")
	assert.Contains(t, output, "17%")
	assert.Contains(t, output, "1 / 6 topics")
	assert.Contains(t, output, "Quantitative Aptitude")
	assert.Contains(t, output, "1 / 4 topics completed")
	assert.Contains(t, output, "0 / 2 topics completed")
	assert.NotContains(t, output, "Percentage")
	assert.NotContains(t, output, "> ")
}

func TestRenderSyllabusExpandAll(t *testing.T) {
	output, err := RenderSyllabus(quantSummary(), RenderOptions{ExpandAll: true})

	require.NoError(t, err)
	assert.Contains(t, output, "[x] Percentage")
	assert.Contains(t, output, "[ ] Profit and Loss")
	assert.Contains(t, output, "[ ] geometry")
	assert.Contains(t, output, "[ ] Vocabulary")
}

func TestRenderSyllabusEmptyExam(t *testing.T) {
	output, err := RenderSyllabus(application.ExamSummary{Exam: domain.Exam{ID: "blank"}}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "blank")
	assert.Contains(t, output, "0%")
	assert.Contains(t, output, "No subjects in this exam.")
}

func TestSyllabusRowsFollowExpansion(t *testing.T) {
	summary := quantSummary()

	collapsed := SyllabusRows(summary, RenderOptions{})
	assert.Equal(t, []Row{{Subject: "quant"}, {Subject: "english"}}, collapsed)

	expanded := SyllabusRows(summary, RenderOptions{Expanded: "english"})
	assert.Equal(t, []Row{
		{Subject: "quant"},
		{Subject: "english"},
		{Subject: "english", Topic: "grammar"},
		{Subject: "english", Topic: "vocabulary"},
	}, expanded)

	assert.Len(t, SyllabusRows(summary, RenderOptions{ExpandAll: true}), 8)
}

func TestSyllabusCursorMarksSelectedRow(t *testing.T) {
	output := Syllabus(quantSummary(), RenderOptions{Expanded: "english", Cursor: 3, ShowCursor: true})

	assert.Contains(t, output, "> [ ] Vocabulary")
	assert.NotContains(t, output, "> [ ] Grammar")
}

func todoSummary() application.TodoSummary {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	done := time.Date(2026, 3, 2, 18, 5, 0, 0, time.UTC)

	active := domain.TodoList{
		{ID: "b", Text: "Revise algebra", CreatedAt: created.Add(time.Hour)},
	}
	completed := domain.TodoList{
		{ID: "a", Text: "Write essay", Completed: true, CreatedAt: created, CompletedAt: &done},
	}

	return application.TodoSummary{
		Active:         active,
		Completed:      completed,
		Total:          2,
		CompletionRate: 50,
		GeneratedAt:    done.Add(time.Hour),
	}
}

func TestRenderTodos(t *testing.T) {
	output, err := RenderTodos(todoSummary(), RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Todos")
	assert.Contains(t, output, "50%")
	assert.Contains(t, output, "1 / 2 done")
	assert.Contains(t, output, "Active (1)")
	assert.Contains(t, output, "[ ] Revise algebra")
	assert.Contains(t, output, "(added 01 Mar)")
	assert.Contains(t, output, "Completed (1)")
	assert.Contains(t, output, "[x] Write essay")
	assert.Contains(t, output, "done 18:05")
}

func TestRenderTodosEmpty(t *testing.T) {
	output, err := RenderTodos(application.TodoSummary{}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "0 / 0 done")
	assert.Contains(t, output, "No todos yet.")
}

func TestTodoRowsListActiveFirst(t *testing.T) {
	assert.Equal(t, []domain.TodoID{"b", "a"}, TodoRows(todoSummary()))
}

func TestRenderExams(t *testing.T) {
	output, err := RenderExams([]application.ExamSummary{
		{Exam: domain.Exam{ID: "ssc", Name: "SSC CGL"}, Current: true, Completed: 1, Total: 8, Percent: 13},
		{Exam: domain.Exam{ID: "upsc", Name: "UPSC"}, Completed: 2, Total: 3, Percent: 67},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "exams: 2")
	assert.Contains(t, output, "* ssc")
	assert.Contains(t, output, " 13%")
	assert.Contains(t, output, "67%")
	assert.Contains(t, output, "2 / 3 topics")
}

func TestRenderProgressBarFill(t *testing.T) {
	s := newStyles()

	tests := []struct {
		name    string
		percent int
		want    string
	}{
		{name: "empty", percent: 0, want: "[----]"},
		{name: "half", percent: 50, want: "[==--]"},
		{name: "full", percent: 100, want: "[====]"},
		{name: "over", percent: 140, want: "[====]"},
		{name: "negative", percent: -5, want: "[----]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderProgressBar(tt.percent, 4, s))
		})
	}
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "18:05", formatDate(time.Date(2026, 3, 2, 18, 5, 0, 0, time.UTC), now))
	assert.Equal(t, "01 Mar", formatDate(time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), now))
	assert.Equal(t, "31 Dec 2025", formatDate(time.Date(2025, 12, 31, 9, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "unknown", formatDate(time.Time{}, now))
}
