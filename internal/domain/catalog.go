package domain

type ExamID string
type SubjectID string
type TopicID string

type Topic struct {
	ID   TopicID
	Name string
}

type Subject struct {
	ID     SubjectID
	Name   string
	Topics []Topic
}

type Exam struct {
	ID       ExamID
	Name     string
	Subjects []Subject
}

// Catalog is the read-only list of exams loaded once at startup.
type Catalog struct {
	Exams []Exam
}

func (c Catalog) Exam(id ExamID) (Exam, bool) {
	for _, exam := range c.Exams {
		if exam.ID == id {
			return exam, true
		}
	}

	return Exam{}, false
}

// Default returns the first exam of the catalog.
func (c Catalog) Default() (Exam, bool) {
	if len(c.Exams) == 0 {
		return Exam{}, false
	}

	return c.Exams[0], true
}

func (e Exam) Subject(id SubjectID) (Subject, bool) {
	for _, subject := range e.Subjects {
		if subject.ID == id {
			return subject, true
		}
	}

	return Subject{}, false
}

// TopicCount returns the number of topics across all subjects.
func (e Exam) TopicCount() int {
	total := 0
	for _, subject := range e.Subjects {
		total += len(subject.Topics)
	}

	return total
}

func (s Subject) Topic(id TopicID) (Topic, bool) {
	for _, topic := range s.Topics {
		if topic.ID == id {
			return topic, true
		}
	}

	return Topic{}, false
}
