package domain

// ProgressState records completed topics as exam -> subject -> topic -> done.
// A missing key at any level means "not completed".
type ProgressState map[ExamID]map[SubjectID]map[TopicID]bool

func (p ProgressState) Completed(exam ExamID, subject SubjectID, topic TopicID) bool {
	subjects, ok := p[exam]
	if !ok || subjects == nil {
		return false
	}

	topics, ok := subjects[subject]
	if !ok || topics == nil {
		return false
	}

	return topics[topic]
}

// WithToggled returns a copy of p with the flag at the given path negated.
// Only the maps on the toggled path are copied; p and every nested map it
// references are left untouched.
func (p ProgressState) WithToggled(exam ExamID, subject SubjectID, topic TopicID) ProgressState {
	next := make(ProgressState, len(p)+1)
	for examID, subjects := range p {
		next[examID] = subjects
	}

	oldSubjects := p[exam]
	subjects := make(map[SubjectID]map[TopicID]bool, len(oldSubjects)+1)
	for subjectID, topics := range oldSubjects {
		subjects[subjectID] = topics
	}

	oldTopics := oldSubjects[subject]
	topics := make(map[TopicID]bool, len(oldTopics)+1)
	for topicID, done := range oldTopics {
		topics[topicID] = done
	}

	topics[topic] = !oldTopics[topic]
	subjects[subject] = topics
	next[exam] = subjects

	return next
}

// CompletedIn counts the subject's catalog topics marked completed for exam.
// Entries for topics no longer in the catalog are ignored.
func (p ProgressState) CompletedIn(exam ExamID, subject Subject) int {
	count := 0
	for _, topic := range subject.Topics {
		if p.Completed(exam, subject.ID, topic.ID) {
			count++
		}
	}

	return count
}
