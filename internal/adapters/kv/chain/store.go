// Package chain pairs a primary KV medium with an overflow medium that only
// holds values the primary failed to take.
package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/prep/internal/domain"
	"github.com/bnema/prep/internal/ports"
)

// Store writes to primary and spills to fallback when primary fails. A key
// present in fallback is always newer than its primary copy: every
// successful primary write clears the fallback entry, and reads check
// fallback first.
type Store struct {
	primary  ports.KVStore
	fallback ports.KVStore
}

var _ ports.KVStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary kv store is nil")
	errNilFallbackStore = errors.New("fallback kv store is nil")
)

func NewStore(primary ports.KVStore, fallback ports.KVStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.KVStore, fallback ports.KVStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		if clearErr := s.fallback.Delete(ctx, key); clearErr != nil {
			// The spilled value would shadow the one just written.
			return fmt.Errorf("clear fallback value %q after primary put: %w", key, clearErr)
		}
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return value, nil
	}
	if shouldSkipFallback(fallbackErr) {
		return "", fallbackErr
	}

	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) || errors.Is(fallbackErr, domain.ErrKeyNotFound) {
		return "", err
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes key from both media. It fails when either delete fails, so
// a surviving primary copy is never reported as gone.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err == nil && fallbackErr == nil:
		return nil
	case err == nil:
		return fmt.Errorf("fallback backend delete failed: %w", fallbackErr)
	case fallbackErr == nil:
		return fmt.Errorf("primary backend delete failed: %w", err)
	default:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	}
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
