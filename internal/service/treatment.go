package service

import (
	"context"
	"strings"
	"time"

	"clinicapi/internal/model"
	"clinicapi/internal/repository"
)

// TreatmentService defines the treatment timeline use cases.
type TreatmentService interface {
	// List returns a patient's treatments, newest first. ErrNotFound when the patient does not exist.
	List(ctx context.Context, patientID int) ([]model.Treatment, error)

	// Add records a treatment; the date defaults to today.
	Add(ctx context.Context, patientID int, in model.NewTreatment) (*model.Treatment, error)
}

type treatmentService struct {
	patients   repository.PatientRepository
	treatments repository.TreatmentRepository
	now        func() time.Time
	loc        *time.Location
}

// NewTreatmentService constructs a new TreatmentService. Default dates are taken in loc.
func NewTreatmentService(patients repository.PatientRepository, treatments repository.TreatmentRepository, loc *time.Location) TreatmentService {
	if loc == nil {
		loc = time.UTC
	}
	return &treatmentService{patients: patients, treatments: treatments, now: time.Now, loc: loc}
}

func (s *treatmentService) ensurePatient(ctx context.Context, id int) error {
	if err := checkID(id); err != nil {
		return err
	}
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return nil
}

func (s *treatmentService) List(ctx context.Context, patientID int) ([]model.Treatment, error) {
	if err := s.ensurePatient(ctx, patientID); err != nil {
		return nil, err
	}
	return s.treatments.ListForPatient(ctx, patientID)
}

func (s *treatmentService) Add(ctx context.Context, patientID int, in model.NewTreatment) (*model.Treatment, error) {
	in.Date = strings.TrimSpace(in.Date)
	in.Treatment = strings.TrimSpace(in.Treatment)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.Date == "" {
		in.Date = s.now().In(s.loc).Format(model.TreatmentDateLayout)
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := s.ensurePatient(ctx, patientID); err != nil {
		return nil, err
	}
	return s.treatments.Add(ctx, patientID, in)
}
