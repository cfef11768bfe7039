package ports

import "context"

// KVStore is a durable string-keyed medium. Get returns domain.ErrKeyNotFound
// when the key has never been written.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// ValueStore holds one in-memory value kept in sync with a durable key.
type ValueStore[T any] interface {
	Get() T
	Set(value T)
	Subscribe(fn func(T)) func()
}
