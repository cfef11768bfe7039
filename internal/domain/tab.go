package domain

type Tab string

const (
	TabSyllabus Tab = "syllabus"
	TabTodo     Tab = "todo"
)

// ParseTab maps any value other than the exact string "todo" to TabSyllabus.
func ParseTab(raw string) Tab {
	switch Tab(raw) {
	case TabTodo:
		return TabTodo
	default:
		return TabSyllabus
	}
}

func (t Tab) Valid() bool {
	switch t {
	case TabSyllabus, TabTodo:
		return true
	default:
		return false
	}
}

// Next cycles between the two top-level views.
func (t Tab) Next() Tab {
	if t == TabTodo {
		return TabSyllabus
	}

	return TabTodo
}
