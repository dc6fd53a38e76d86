package storage

import (
	"context"
	"errors"
)

// ErrCorrupt is returned when a stored document exists but cannot be decoded.
var ErrCorrupt = errors.New("stored document is corrupt")

// Backend reads and writes a whole collection as one unit.
//
// Read on a missing underlying resource initialises it to the empty collection,
// persists that state and returns it; it never reports "not found". Any other
// failure is returned to the caller without retry.
type Backend[T any] interface {
	// Read loads the full collection.
	Read(ctx context.Context) (T, error)
	// Write replaces the full collection.
	Write(ctx context.Context, v T) error
}
