package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"clinicapi/internal/assistant"
	"clinicapi/internal/model"
	"clinicapi/internal/repository"
)

// Suggester produces diagnosis suggestions; implemented by assistant.Assistant.
type Suggester interface {
	Suggest(ctx context.Context, req model.DiagnosisRequest) (*model.DiagnosisSuggestion, error)
}

// DiagnosisService defines the AI diagnosis assistant use case.
type DiagnosisService interface {
	// Suggest asks the assistant about a patient. When req.PatientHistory is empty
	// it is built from the patient's recorded medical and dental history.
	Suggest(ctx context.Context, patientID int, req model.DiagnosisRequest) (*model.DiagnosisSuggestion, error)
}

type diagnosisService struct {
	patients  repository.PatientRepository
	suggester Suggester
	log       zerolog.Logger
}

// NewDiagnosisService constructs a new DiagnosisService. suggester may be nil when no model is configured.
func NewDiagnosisService(patients repository.PatientRepository, suggester Suggester, log zerolog.Logger) DiagnosisService {
	return &diagnosisService{patients: patients, suggester: suggester, log: log}
}

func (s *diagnosisService) Suggest(ctx context.Context, patientID int, req model.DiagnosisRequest) (*model.DiagnosisSuggestion, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := checkID(patientID); err != nil {
		return nil, err
	}
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if s.suggester == nil {
		return nil, ErrAssistantDisabled
	}

	if strings.TrimSpace(req.PatientHistory) == "" {
		req.PatientHistory = fmt.Sprintf("Medical history: %s\nDental history: %s", p.MedicalHistory, p.DentalHistory)
	}

	out, err := s.suggester.Suggest(ctx, req)
	if err != nil {
		if errors.Is(err, assistant.ErrInvalidInput) {
			return nil, &ValidationError{Fields: map[string]string{"patientHistory": "is required"}}
		}
		s.log.Error().Err(err).Int("patient_id", patientID).Msg("diagnosis_failed")
		return nil, ErrDiagnosisFailed
	}
	return out, nil
}
