package application

import (
	"fmt"

	"github.com/bnema/prep/internal/domain"
	"github.com/bnema/prep/internal/ports"
)

// ProgressTracker computes syllabus completion over a persisted
// ProgressState. The selected exam is transient and never persisted.
type ProgressTracker struct {
	store   ports.ValueStore[domain.ProgressState]
	catalog domain.Catalog
	current domain.ExamID
}

func NewProgressTracker(store ports.ValueStore[domain.ProgressState], catalog domain.Catalog) *ProgressTracker {
	t := &ProgressTracker{store: store, catalog: catalog}
	if exam, ok := catalog.Default(); ok {
		t.current = exam.ID
	}

	return t
}

func (t *ProgressTracker) Catalog() domain.Catalog {
	return t.catalog
}

func (t *ProgressTracker) SelectExam(id domain.ExamID) error {
	if _, ok := t.catalog.Exam(id); !ok {
		return fmt.Errorf("select exam %q: %w", id, domain.ErrExamNotFound)
	}

	t.current = id
	return nil
}

// CurrentExam returns the selected exam; ok is false for an empty catalog.
func (t *ProgressTracker) CurrentExam() (domain.Exam, bool) {
	return t.catalog.Exam(t.current)
}

func (t *ProgressTracker) IsTopicCompleted(exam domain.ExamID, subject domain.SubjectID, topic domain.TopicID) bool {
	return t.store.Get().Completed(exam, subject, topic)
}

// ToggleTopic flips one topic without validating it against the catalog.
func (t *ProgressTracker) ToggleTopic(exam domain.ExamID, subject domain.SubjectID, topic domain.TopicID) {
	t.store.Set(t.store.Get().WithToggled(exam, subject, topic))
}

// ToggleCatalogTopic flips a topic of the catalog and reports its new state.
func (t *ProgressTracker) ToggleCatalogTopic(examID domain.ExamID, subjectID domain.SubjectID, topicID domain.TopicID) (bool, error) {
	exam, ok := t.catalog.Exam(examID)
	if !ok {
		return false, fmt.Errorf("toggle topic: exam %q: %w", examID, domain.ErrExamNotFound)
	}
	subject, ok := exam.Subject(subjectID)
	if !ok {
		return false, fmt.Errorf("toggle topic: subject %q in exam %q: %w", subjectID, examID, domain.ErrSubjectNotFound)
	}
	if _, ok := subject.Topic(topicID); !ok {
		return false, fmt.Errorf("toggle topic: topic %q in subject %q: %w", topicID, subjectID, domain.ErrTopicNotFound)
	}

	t.ToggleTopic(examID, subjectID, topicID)
	return t.IsTopicCompleted(examID, subjectID, topicID), nil
}

// SubjectCompletedCount counts completed topics of subject in the current exam.
func (t *ProgressTracker) SubjectCompletedCount(subject domain.Subject) int {
	return t.store.Get().CompletedIn(t.current, subject)
}

// SubjectCompletionPercentage is 0 for a subject without topics.
func (t *ProgressTracker) SubjectCompletionPercentage(subject domain.Subject) int {
	return domain.CompletionPercentage(t.SubjectCompletedCount(subject), len(subject.Topics))
}

// ExamCompletionPercentage aggregates every topic of exam, looked up under
// exam.ID. SubjectCompletionPercentage instead reads under the current exam.
func (t *ProgressTracker) ExamCompletionPercentage(exam domain.Exam) int {
	completed, total := t.examCounts(t.store.Get(), exam)
	return domain.CompletionPercentage(completed, total)
}

func (t *ProgressTracker) examCounts(state domain.ProgressState, exam domain.Exam) (int, int) {
	completed := 0
	for _, subject := range exam.Subjects {
		completed += state.CompletedIn(exam.ID, subject)
	}

	return completed, exam.TopicCount()
}

// Summary describes the current exam for rendering.
func (t *ProgressTracker) Summary() (ExamSummary, error) {
	exam, ok := t.CurrentExam()
	if !ok {
		return ExamSummary{}, fmt.Errorf("summarize progress: %w", domain.ErrExamNotFound)
	}

	return t.summarize(t.store.Get(), exam), nil
}

// Overview summarises every exam of the catalog, without topic detail.
func (t *ProgressTracker) Overview() []ExamSummary {
	state := t.store.Get()
	out := make([]ExamSummary, 0, len(t.catalog.Exams))
	for _, exam := range t.catalog.Exams {
		completed, total := t.examCounts(state, exam)
		out = append(out, ExamSummary{
			Exam:      exam,
			Completed: completed,
			Total:     total,
			Percent:   domain.CompletionPercentage(completed, total),
			Current:   exam.ID == t.current,
		})
	}

	return out
}

func (t *ProgressTracker) summarize(state domain.ProgressState, exam domain.Exam) ExamSummary {
	summary := ExamSummary{Exam: exam, Current: exam.ID == t.current}
	for _, subject := range exam.Subjects {
		row := SubjectSummary{Subject: subject, Total: len(subject.Topics)}
		for _, topic := range subject.Topics {
			done := state.Completed(exam.ID, subject.ID, topic.ID)
			if done {
				row.Completed++
			}
			row.Topics = append(row.Topics, TopicStatus{Topic: topic, Completed: done})
		}
		row.Percent = domain.CompletionPercentage(row.Completed, row.Total)

		summary.Completed += row.Completed
		summary.Total += row.Total
		summary.Subjects = append(summary.Subjects, row)
	}
	summary.Percent = domain.CompletionPercentage(summary.Completed, summary.Total)

	return summary
}
