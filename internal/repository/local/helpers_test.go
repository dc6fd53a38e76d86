package local

import (
	"context"
	"path/filepath"
	"testing"

	"clinicapi/internal/model"
	"clinicapi/internal/storage"
)

// failingBackend returns the configured errors from Read and Write.
type failingBackend[T any] struct {
	readErr  error
	writeErr error
	value    T
}

func (b *failingBackend[T]) Read(context.Context) (T, error) {
	return b.value, b.readErr
}

func (b *failingBackend[T]) Write(_ context.Context, v T) error {
	if b.writeErr != nil {
		return b.writeErr
	}
	b.value = v
	return nil
}

func patientsFile(t *testing.T) *storage.JSONFile[[]model.Patient] {
	t.Helper()
	return storage.NewJSONFile(filepath.Join(t.TempDir(), "patients.json"), func() []model.Patient { return []model.Patient{} })
}

func filesFile(t *testing.T) *storage.JSONFile[model.FilesIndex] {
	t.Helper()
	return storage.NewJSONFile(filepath.Join(t.TempDir(), "files.json"), func() model.FilesIndex { return model.FilesIndex{} })
}

func treatmentsFile(t *testing.T) *storage.JSONFile[[]model.Treatment] {
	t.Helper()
	return storage.NewJSONFile(filepath.Join(t.TempDir(), "treatments.json"), func() []model.Treatment { return []model.Treatment{} })
}
