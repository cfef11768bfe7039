package store

import (
	"encoding/json"
	"fmt"
)

// Codec converts a value to and from the text kept in the durable medium.
type Codec[T any] interface {
	Encode(value T) (string, error)
	Decode(raw string) (T, error)
}

// JSONCodec stores values as JSON. time.Time fields are written in RFC 3339
// with nanoseconds, so decoding yields the same instant.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(value T) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}

	return string(data), nil
}

func (JSONCodec[T]) Decode(raw string) (T, error) {
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		var zero T
		return zero, fmt.Errorf("decode json: %w", err)
	}

	return value, nil
}

// StringCodec stores string-kinded values verbatim. Parse normalises what
// was read back, e.g. mapping unknown enum values to a default.
type StringCodec[T ~string] struct {
	Parse func(raw string) T
}

func (c StringCodec[T]) Encode(value T) (string, error) {
	return string(value), nil
}

func (c StringCodec[T]) Decode(raw string) (T, error) {
	if c.Parse == nil {
		return T(raw), nil
	}

	return c.Parse(raw), nil
}
