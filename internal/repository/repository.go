// Package repository defines the data access contracts for patients, their files
// and their treatment timelines. Implementations live in subpackages (local, postgres).
//
// Repositories are the sole writers of their backing store. Expected outcomes
// (absent patient, empty file list, unsupported share) are returned as values;
// only unexpected I/O failures are returned as errors.
package repository

import (
	"context"

	"clinicapi/internal/model"
)

// PatientRepository owns patient id assignment and lookup.
type PatientRepository interface {
	// List returns every patient in stored order.
	List(ctx context.Context) ([]model.Patient, error)

	// GetByID returns the patient with the given id, or nil without error when there is none.
	GetByID(ctx context.Context, id int) (*model.Patient, error)

	// Add assigns the next id (max existing + 1, starting at 1) and a placeholder avatar,
	// appends the patient and persists the full collection.
	Add(ctx context.Context, p model.NewPatient) (*model.Patient, error)
}

// FileRepository owns the per-patient file lists and the cross-provider merge policy.
type FileRepository interface {
	// ListForPatient returns the files of a patient; remote files first when a remote provider is active.
	// A patient with no files yields an empty slice.
	ListForPatient(ctx context.Context, patientID int) ([]model.DigitalFile, error)

	// AddForPatient tags the file with the active provider and appends it to the patient's list.
	AddForPatient(ctx context.Context, patientID int, f model.NewFile) (*model.DigitalFile, error)

	// Share applies the sharing policy. Unsupported combinations are reported in the result, not as errors.
	Share(ctx context.Context, f model.DigitalFile) (model.ShareResult, error)
}

// TreatmentRepository stores treatment timeline entries.
type TreatmentRepository interface {
	// ListForPatient returns the patient's treatments, newest first.
	ListForPatient(ctx context.Context, patientID int) ([]model.Treatment, error)

	// Add stores a new treatment entry and returns it with its assigned id.
	Add(ctx context.Context, patientID int, t model.NewTreatment) (*model.Treatment, error)
}
