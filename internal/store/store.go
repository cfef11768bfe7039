// Package store keeps an in-memory value in sync with one key of a durable
// KV medium.
//
// Reads never touch the medium after Open. Set updates memory and notifies
// subscribers synchronously, then hands the encoded value to a background
// writer. Durable failures are logged and recorded but never returned from
// Get or Set: the in-memory value stays authoritative.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/prep/internal/domain"
	"github.com/bnema/prep/internal/ports"
	"go.uber.org/zap"
)

var (
	errNilKVStore = errors.New("kv store is nil")
	errEmptyKey   = errors.New("store key is empty")
)

type Config[T any] struct {
	Key     string
	Default T
	// Codec defaults to JSONCodec.
	Codec  Codec[T]
	Logger *zap.Logger
}

type listener[T any] struct {
	id int
	fn func(T)
}

// pendingWrite is the latest durable operation not yet performed.
type pendingWrite struct {
	payload string
	remove  bool
}

type flushWaiter struct {
	seq  uint64
	done chan struct{}
}

type Store[T any] struct {
	kv     ports.KVStore
	key    string
	def    T
	codec  Codec[T]
	logger *zap.Logger

	mu         sync.RWMutex
	value      T
	listeners  []listener[T]
	listenerID int

	writeMu  sync.Mutex
	pending  *pendingWrite
	seq      uint64
	written  uint64
	lastErr  error
	waiters  []flushWaiter
	closed   bool
	wake     chan struct{}
	stopped  chan struct{}
	writeCtx context.Context
	cancel   context.CancelFunc
}

// Open reads key once and starts the background writer. A missing, unreadable
// or undecodable stored value falls back to cfg.Default; Open only fails on
// invalid arguments.
func Open[T any](ctx context.Context, kv ports.KVStore, cfg Config[T]) (*Store[T], error) {
	if kv == nil {
		return nil, errNilKVStore
	}
	if cfg.Key == "" {
		return nil, errEmptyKey
	}
	if cfg.Codec == nil {
		cfg.Codec = JSONCodec[T]{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	writeCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s := &Store[T]{
		kv:       kv,
		key:      cfg.Key,
		def:      cfg.Default,
		codec:    cfg.Codec,
		logger:   cfg.Logger.With(zap.String("key", cfg.Key)),
		wake:     make(chan struct{}, 1),
		stopped:  make(chan struct{}),
		writeCtx: writeCtx,
		cancel:   cancel,
	}
	s.value = s.load(ctx, cfg.Default)

	go s.run()

	return s, nil
}

func (s *Store[T]) load(ctx context.Context, def T) T {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Debug("no stored value, using default")
		} else {
			s.logger.Warn("read stored value failed, using default", zap.Error(err))
		}
		return def
	}

	value, err := s.codec.Decode(raw)
	if err != nil {
		s.logger.Warn("discarding undecodable stored value", zap.Error(err))
		return def
	}

	return value
}

func (s *Store[T]) Key() string {
	return s.key
}

// Get returns the current in-memory value. Callers must treat it as
// read-only and produce a new value for Set.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.value
}

// Set replaces the in-memory value, schedules the durable write and notifies
// subscribers in registration order.
func (s *Store[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	s.persist(value)
	s.notify(listeners, value)
}

// Reset restores the default value and schedules removal of the durable
// key, so the next Open starts from the default too.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	s.value = s.def
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	s.schedule(pendingWrite{remove: true})
	s.notify(listeners, s.def)
}

func (s *Store[T]) notify(listeners []listener[T], value T) {
	for _, l := range listeners {
		l.fn(value)
	}
}

// Update sets fn applied to the current value.
func (s *Store[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Subscribe registers fn to be called after every Set. The returned func
// removes it.
func (s *Store[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listenerID++
	id := s.listenerID
	s.listeners = append(s.listeners, listener[T]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.listeners = slices.DeleteFunc(s.listeners, func(l listener[T]) bool {
			return l.id == id
		})
	}
}

// LastWriteError reports the outcome of the most recent durable write.
func (s *Store[T]) LastWriteError() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.lastErr
}

// Flush waits until every value set before the call has been written (or
// dropped) and returns the last write error.
func (s *Store[T]) Flush(ctx context.Context) error {
	s.writeMu.Lock()
	if s.written >= s.seq {
		err := s.lastErr
		s.writeMu.Unlock()
		return err
	}
	done := make(chan struct{})
	s.waiters = append(s.waiters, flushWaiter{seq: s.seq, done: done})
	s.writeMu.Unlock()

	select {
	case <-done:
		return s.LastWriteError()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes pending writes and stops the writer. Values set afterwards
// still update memory but are not persisted.
func (s *Store[T]) Close(ctx context.Context) error {
	flushErr := s.Flush(ctx)

	s.writeMu.Lock()
	if s.closed {
		s.writeMu.Unlock()
		return flushErr
	}
	s.closed = true
	close(s.wake)
	s.writeMu.Unlock()

	select {
	case <-s.stopped:
	case <-ctx.Done():
		s.cancel()
		<-s.stopped
		return errors.Join(flushErr, ctx.Err())
	}
	s.cancel()

	return flushErr
}

func (s *Store[T]) persist(value T) {
	payload, err := s.codec.Encode(value)
	if err != nil {
		s.logger.Warn("encode value failed, keeping it in memory only", zap.Error(err))
		s.writeMu.Lock()
		s.lastErr = fmt.Errorf("encode %q: %w", s.key, err)
		s.writeMu.Unlock()
		return
	}

	s.schedule(pendingWrite{payload: payload})
}

func (s *Store[T]) schedule(w pendingWrite) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.closed {
		s.logger.Debug("store closed, dropping write")
		return
	}

	s.pending = &w
	s.seq++

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Store[T]) run() {
	defer close(s.stopped)

	for range s.wake {
		s.drain()
	}
	s.drain()
}

// drain writes the latest pending payload until none is left. Payloads set
// while a write is in flight are coalesced into one.
func (s *Store[T]) drain() {
	for {
		s.writeMu.Lock()
		if s.pending == nil {
			s.writeMu.Unlock()
			return
		}
		w, seq := *s.pending, s.seq
		s.pending = nil
		s.writeMu.Unlock()

		var err error
		if w.remove {
			err = s.kv.Delete(s.writeCtx, s.key)
		} else {
			err = s.kv.Put(s.writeCtx, s.key, w.payload)
		}
		if err != nil {
			s.logger.Warn("durable write failed, in-memory value kept", zap.Error(err), zap.Bool("remove", w.remove))
		}

		s.writeMu.Lock()
		s.written = seq
		s.lastErr = err
		s.waiters = slices.DeleteFunc(s.waiters, func(w flushWaiter) bool {
			if w.seq <= seq {
				close(w.done)
				return true
			}
			return false
		})
		s.writeMu.Unlock()
	}
}
