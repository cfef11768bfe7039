package store

import (
	"testing"
	"time"

	"github.com/bnema/prep/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodecRoundTripProgressState(t *testing.T) {
	t.Parallel()

	codec := JSONCodec[domain.ProgressState]{}
	state := domain.ProgressState{
		"ssc":  {"math": {"algebra": true, "geometry": false}, "english": {"grammar": true}},
		"upsc": {"polity": {}},
	}

	raw, err := codec.Encode(state)
	require.NoError(t, err)
	decoded, err := codec.Decode(raw)
	require.NoError(t, err)

	if diff := cmp.Diff(state, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONCodecRoundTripTodoTimestamps(t *testing.T) {
	t.Parallel()

	codec := JSONCodec[domain.TodoList]{}
	createdAt := time.Date(2026, 10, 19, 7, 45, 12, 987654321, time.FixedZone("IST", 19800))
	completedAt := createdAt.Add(3 * time.Hour)
	list := domain.TodoList{
		{ID: "2", Text: "Revise polity", Completed: true, CreatedAt: createdAt, CompletedAt: &completedAt},
		{ID: "1", Text: "Mock test", CreatedAt: createdAt.Add(-24 * time.Hour)},
	}

	raw, err := codec.Encode(list)
	require.NoError(t, err)
	assert.Contains(t, raw, `"createdAt":"2026-10-19T07:45:12.987654321+05:30"`)

	decoded, err := codec.Decode(raw)
	require.NoError(t, err)

	equalInstants := cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })
	if diff := cmp.Diff(list, decoded, equalInstants); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONCodecDecodeError(t *testing.T) {
	t.Parallel()

	_, err := JSONCodec[domain.TodoList]{}.Decode(`{"id":1}`)
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode json")
}

func TestStringCodec(t *testing.T) {
	t.Parallel()

	codec := StringCodec[domain.Tab]{Parse: domain.ParseTab}

	raw, err := codec.Encode(domain.TabTodo)
	require.NoError(t, err)
	assert.Equal(t, "todo", raw)

	tab, err := codec.Decode("garbage")
	require.NoError(t, err)
	assert.Equal(t, domain.TabSyllabus, tab)

	verbatim, err := StringCodec[domain.Tab]{}.Decode("anything")
	require.NoError(t, err)
	assert.Equal(t, domain.Tab("anything"), verbatim)
}
