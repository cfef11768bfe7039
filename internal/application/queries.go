package application

import (
	"time"

	"github.com/bnema/prep/internal/domain"
)

type TopicStatus struct {
	Topic     domain.Topic
	Completed bool
}

type SubjectSummary struct {
	Subject   domain.Subject
	Completed int
	Total     int
	Percent   int
	Topics    []TopicStatus
}

type ExamSummary struct {
	Exam      domain.Exam
	Current   bool
	Completed int
	Total     int
	Percent   int
	Subjects  []SubjectSummary
}

type TodoSummary struct {
	Active         domain.TodoList
	Completed      domain.TodoList
	Total          int
	CompletionRate int
	GeneratedAt    time.Time
}
