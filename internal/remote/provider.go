// Package remote contains the file providers that live outside the local JSON index.
//
// The repository selects at most one Provider at construction time. Listings
// from the provider are shown ahead of local files.
package remote

import (
	"context"

	"clinicapi/internal/model"
)

// Provider is a remote file backend keyed by patient id.
type Provider interface {
	// Name identifies the provider in logs and health output.
	Name() string
	// ListFiles returns the remote files of a patient. An unknown patient yields an empty slice.
	ListFiles(ctx context.Context, patientID int) ([]model.DigitalFile, error)
	// AddFile hands a new file to the provider and returns the stored form, tagged remote.
	AddFile(ctx context.Context, patientID int, f model.NewFile) (model.DigitalFile, error)
	// StoresFiles reports whether AddFile persists the file so that ListFiles
	// returns it. When false the caller keeps its own record of added files.
	StoresFiles() bool
	// ShareURL returns a link that lets a specialist open the file.
	ShareURL(ctx context.Context, f model.DigitalFile) (string, error)
}
