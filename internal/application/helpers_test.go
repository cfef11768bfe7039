package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/bnema/prep/internal/adapters/kv/memory"
	"github.com/bnema/prep/internal/domain"
	"github.com/bnema/prep/internal/store"
	"github.com/stretchr/testify/require"
)

func openTestStore[T any](t *testing.T, kv *memory.Store, key string, def T) *store.Store[T] {
	t.Helper()

	s, err := store.Open(context.Background(), kv, store.Config[T]{Key: key, Default: def})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close(context.Background())
	})

	return s
}

type sequenceIDs struct {
	ids  []string
	next int
}

func (s *sequenceIDs) NewID() string {
	if s.next < len(s.ids) {
		id := s.ids[s.next]
		s.next++
		return id
	}
	s.next++
	return fmt.Sprintf("id-%d", s.next)
}

func testCatalog() domain.Catalog {
	return domain.Catalog{Exams: []domain.Exam{
		{
			ID:   "ssc",
			Name: "SSC CGL",
			Subjects: []domain.Subject{
				{ID: "quant", Name: "Quant", Topics: []domain.Topic{
					{ID: "percentage"}, {ID: "profit-loss"}, {ID: "time-work"}, {ID: "geometry"},
				}},
				{ID: "english", Name: "English", Topics: []domain.Topic{
					{ID: "grammar"}, {ID: "vocabulary"},
				}},
				{ID: "empty", Name: "Empty"},
			},
		},
		{
			ID:   "upsc",
			Name: "UPSC",
			Subjects: []domain.Subject{
				{ID: "polity", Topics: []domain.Topic{{ID: "constitution"}, {ID: "parliament"}, {ID: "judiciary"}}},
			},
		},
		{ID: "blank", Name: "No subjects"},
	}}
}
