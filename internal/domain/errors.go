package domain

import "errors"

var (
	ErrKeyNotFound      = errors.New("key not found")
	ErrExamNotFound     = errors.New("exam not found")
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrTopicNotFound    = errors.New("topic not found")
	ErrTodoNotFound     = errors.New("todo not found")
	ErrAmbiguousTodoRef = errors.New("todo reference matches more than one todo")
	ErrEmptyTodoText    = errors.New("todo text is empty")
)
