package local

import (
	"context"
	"fmt"
	"time"

	"clinicapi/internal/model"
	"clinicapi/internal/repository"
	"clinicapi/internal/storage"
)

// Treatments is a TreatmentRepository backed by a JSON array document.
type Treatments struct {
	backend storage.Backend[[]model.Treatment]
	now     func() time.Time
}

var _ repository.TreatmentRepository = (*Treatments)(nil)

// NewTreatments creates the local treatment repository.
func NewTreatments(backend storage.Backend[[]model.Treatment]) *Treatments {
	return &Treatments{backend: backend, now: time.Now}
}

// ListForPatient returns the patient's entries with the most recently added first.
func (r *Treatments) ListForPatient(ctx context.Context, patientID int) ([]model.Treatment, error) {
	all, err := r.backend.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read treatments: %w", err)
	}
	out := make([]model.Treatment, 0)
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].PatientID == patientID {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// Add appends an entry with id max+1 across all patients.
func (r *Treatments) Add(ctx context.Context, patientID int, in model.NewTreatment) (*model.Treatment, error) {
	all, err := r.backend.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read treatments: %w", err)
	}

	highest := 0
	for _, t := range all {
		if t.ID > highest {
			highest = t.ID
		}
	}

	t := model.Treatment{
		ID:        highest + 1,
		PatientID: patientID,
		Date:      in.Date,
		Treatment: in.Treatment,
		Notes:     in.Notes,
		CreatedAt: r.now().UTC(),
	}
	if err := r.backend.Write(ctx, append(all, t)); err != nil {
		return nil, fmt.Errorf("write treatments: %w", err)
	}
	return &t, nil
}
