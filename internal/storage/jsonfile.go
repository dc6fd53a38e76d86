package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFile is a Backend that keeps the collection in a single pretty-printed JSON document.
// It performs no locking; concurrent writers to the same path may lose updates.
type JSONFile[T any] struct {
	path  string
	empty func() T
}

var _ Backend[[]int] = (*JSONFile[[]int])(nil)

// NewJSONFile creates a JSON document backend at path.
// empty must return the value written when the document does not exist yet.
func NewJSONFile[T any](path string, empty func() T) *JSONFile[T] {
	return &JSONFile[T]{path: path, empty: empty}
}

// Read decodes the document, creating it with the empty collection when it is missing.
func (f *JSONFile[T]) Read(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			v := f.empty()
			if err := f.Write(ctx, v); err != nil {
				return zero, fmt.Errorf("initialise %s: %w", f.path, err)
			}
			return v, nil
		}
		return zero, fmt.Errorf("read %s: %w", f.path, err)
	}

	// a literal null would decode to a nil collection
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return f.empty(), nil
	}

	v := f.empty()
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.path, err)
	}
	return v, nil
}

// Write replaces the document. The new content is written to a sibling
// temporary file and renamed into place so readers never see a partial document.
func (f *JSONFile[T]) Write(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}
