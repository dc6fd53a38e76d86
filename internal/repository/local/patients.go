// Package local implements the repositories on top of local JSON documents.
package local

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"clinicapi/internal/config"
	"clinicapi/internal/model"
	"clinicapi/internal/repository"
	"clinicapi/internal/storage"
)

// Patients is a PatientRepository backed by a JSON array document.
//
// Each mutation is an unlocked read-modify-write of the whole document, so two
// concurrent Add calls can compute the same id and one of them is lost.
// Callers that need concurrent writers must serialise access themselves.
type Patients struct {
	backend  storage.Backend[[]model.Patient]
	features config.Features
	log      zerolog.Logger
}

var _ repository.PatientRepository = (*Patients)(nil)

// NewPatients creates the patient repository.
func NewPatients(backend storage.Backend[[]model.Patient], features config.Features, log zerolog.Logger) *Patients {
	return &Patients{backend: backend, features: features, log: log}
}

// List returns every patient in stored order.
func (r *Patients) List(ctx context.Context) ([]model.Patient, error) {
	patients, err := r.backend.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read patients: %w", err)
	}
	return patients, nil
}

// GetByID performs a linear scan. A missing id is not an error.
func (r *Patients) GetByID(ctx context.Context, id int) (*model.Patient, error) {
	patients, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == id {
			p := patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Add appends a new patient with id max+1 and rewrites the document.
func (r *Patients) Add(ctx context.Context, in model.NewPatient) (*model.Patient, error) {
	if r.features.Database {
		// No database-backed patient store exists; the local document stays authoritative.
		r.log.Warn().Str("operation", "add_patient").Msg("database backend not supported; using local store")
	}

	patients, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	p := model.Patient{
		ID:             nextPatientID(patients),
		Name:           in.Name,
		Phone:          in.Phone,
		Email:          in.Email,
		DateOfBirth:    in.DateOfBirth,
		MedicalHistory: in.MedicalHistory,
		DentalHistory:  in.DentalHistory,
		AvatarURL:      model.PlaceholderAvatarURL,
	}

	updated := make([]model.Patient, 0, len(patients)+1)
	updated = append(updated, patients...)
	updated = append(updated, p)

	if err := r.backend.Write(ctx, updated); err != nil {
		return nil, fmt.Errorf("write patients: %w", err)
	}

	r.log.Info().Int("patient_id", p.ID).Msg("patient_added")
	return &p, nil
}

func nextPatientID(patients []model.Patient) int {
	highest := 0
	for _, p := range patients {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest + 1
}
