package service

import (
	"context"
	"errors"
	"testing"

	"clinicapi/internal/assistant"
	"clinicapi/internal/model"
	repoMocks "clinicapi/internal/repository/mocks"
	serviceMocks "clinicapi/internal/service/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiagnosisService_Suggest(t *testing.T) {
	ctx := context.Background()
	patient := &model.Patient{ID: 2, MedicalHistory: "Allergic to penicillin.", DentalHistory: "Grinds teeth at night."}
	suggestion := &model.DiagnosisSuggestion{PotentialDiagnoses: "Bruxism", SuggestedTreatments: "Night guard", ConfidenceLevel: "medium"}

	t.Run("builds history from patient record", func(t *testing.T) {
		mPatients := new(repoMocks.MockPatientRepository)
		mSuggester := new(serviceMocks.MockSuggester)
		mPatients.On("GetByID", ctx, 2).Return(patient, nil)
		mSuggester.On("Suggest", ctx, model.DiagnosisRequest{
			PatientHistory: "Medical history: Allergic to penicillin.\nDental history: Grinds teeth at night.",
			ChartMarkings:  "Tooth 3: worn enamel",
		}).Return(suggestion, nil)

		svc := NewDiagnosisService(mPatients, mSuggester, zerolog.Nop())
		got, err := svc.Suggest(ctx, 2, model.DiagnosisRequest{ChartMarkings: "Tooth 3: worn enamel"})

		require.NoError(t, err)
		assert.Equal(t, suggestion, got)
		mSuggester.AssertExpectations(t)
	})

	t.Run("keeps explicit history", func(t *testing.T) {
		mPatients := new(repoMocks.MockPatientRepository)
		mSuggester := new(serviceMocks.MockSuggester)
		req := model.DiagnosisRequest{PatientHistory: "custom", ChartMarkings: "Tooth 3"}
		mPatients.On("GetByID", ctx, 2).Return(patient, nil)
		mSuggester.On("Suggest", ctx, req).Return(suggestion, nil)

		_, err := NewDiagnosisService(mPatients, mSuggester, zerolog.Nop()).Suggest(ctx, 2, req)

		require.NoError(t, err)
		mSuggester.AssertExpectations(t)
	})

	t.Run("model failure is generic", func(t *testing.T) {
		mPatients := new(repoMocks.MockPatientRepository)
		mSuggester := new(serviceMocks.MockSuggester)
		mPatients.On("GetByID", ctx, 2).Return(patient, nil)
		mSuggester.On("Suggest", ctx, mock.Anything).Return(nil, assistant.ErrInvalidOutput)

		_, err := NewDiagnosisService(mPatients, mSuggester, zerolog.Nop()).Suggest(ctx, 2, model.DiagnosisRequest{ChartMarkings: "x"})

		assert.ErrorIs(t, err, ErrDiagnosisFailed)
	})

	t.Run("assistant not configured", func(t *testing.T) {
		mPatients := new(repoMocks.MockPatientRepository)
		mPatients.On("GetByID", ctx, 2).Return(patient, nil)

		_, err := NewDiagnosisService(mPatients, nil, zerolog.Nop()).Suggest(ctx, 2, model.DiagnosisRequest{ChartMarkings: "x"})

		assert.ErrorIs(t, err, ErrAssistantDisabled)
	})

	t.Run("missing chart markings", func(t *testing.T) {
		_, err := NewDiagnosisService(nil, nil, zerolog.Nop()).Suggest(ctx, 2, model.DiagnosisRequest{})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "chartMarkings")
	})

	t.Run("unknown patient", func(t *testing.T) {
		mPatients := new(repoMocks.MockPatientRepository)
		mPatients.On("GetByID", ctx, 5).Return(nil, nil)

		_, err := NewDiagnosisService(mPatients, nil, zerolog.Nop()).Suggest(ctx, 5, model.DiagnosisRequest{ChartMarkings: "x"})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mPatients := new(repoMocks.MockPatientRepository)
		mPatients.On("GetByID", ctx, 5).Return(nil, errors.New("eio"))

		_, err := NewDiagnosisService(mPatients, nil, zerolog.Nop()).Suggest(ctx, 5, model.DiagnosisRequest{ChartMarkings: "x"})

		assert.EqualError(t, err, "eio")
	})
}
