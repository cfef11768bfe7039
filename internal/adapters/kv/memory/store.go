// Package memory provides a map-backed KVStore for tests and ephemeral runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/prep/internal/domain"
	"github.com/bnema/prep/internal/ports"
)

type Store struct {
	mu       sync.RWMutex
	values   map[string]string
	writeErr error
	puts     int
}

var _ ports.KVStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{values: map[string]string{}}
}

// NewStoreWith seeds the store with values, e.g. a malformed payload.
func NewStoreWith(values map[string]string) *Store {
	s := NewStore()
	for key, value := range values {
		s.values[key] = value
	}

	return s
}

// FailWrites makes every following Put and Delete return err. A nil err
// restores normal behaviour.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeErr = err
}

// Puts reports how many Put calls reached the medium, failed ones included.
func (s *Store) Puts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.puts
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("memory value %q: %w", key, domain.ErrKeyNotFound)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.puts++
	if s.writeErr != nil {
		return fmt.Errorf("write memory value %q: %w", key, s.writeErr)
	}

	s.values[key] = value
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return fmt.Errorf("delete memory value %q: %w", key, s.writeErr)
	}

	delete(s.values, key)
	return nil
}
