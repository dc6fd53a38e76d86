package service

import (
	"context"
	"strings"

	"clinicapi/internal/model"
	"clinicapi/internal/repository"
)

// PatientService defines the patient directory use cases.
type PatientService interface {
	// List returns every patient, or those whose name (case-insensitive) or phone contains query.
	List(ctx context.Context, query string) ([]model.Patient, error)

	// Get returns a single patient; ErrNotFound when it does not exist.
	Get(ctx context.Context, id int) (*model.Patient, error)

	// Add validates the input and creates a patient.
	Add(ctx context.Context, in model.NewPatient) (*model.Patient, error)
}

type patientService struct {
	repo repository.PatientRepository
}

// NewPatientService constructs a new PatientService.
func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) List(ctx context.Context, query string) ([]model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return patients, nil
	}

	lower := strings.ToLower(query)
	out := make([]model.Patient, 0)
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), lower) || strings.Contains(p.Phone, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *patientService) Get(ctx context.Context, id int) (*model.Patient, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *patientService) Add(ctx context.Context, in model.NewPatient) (*model.Patient, error) {
	in = model.NewPatient{
		Name:           strings.TrimSpace(in.Name),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.TrimSpace(in.Email),
		DateOfBirth:    strings.TrimSpace(in.DateOfBirth),
		MedicalHistory: strings.TrimSpace(in.MedicalHistory),
		DentalHistory:  strings.TrimSpace(in.DentalHistory),
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	return s.repo.Add(ctx, in)
}
