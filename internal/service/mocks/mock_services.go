package mocks

import (
	"context"

	"clinicapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) List(ctx context.Context, query string) ([]model.Patient, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientService) Get(ctx context.Context, id int) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) Add(ctx context.Context, in model.NewPatient) (*model.Patient, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) List(ctx context.Context, patientID int) ([]model.DigitalFile, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DigitalFile), args.Error(1)
}

func (m *MockFileService) Add(ctx context.Context, patientID int, f model.NewFile) (*model.DigitalFile, error) {
	args := m.Called(ctx, patientID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DigitalFile), args.Error(1)
}

func (m *MockFileService) Share(ctx context.Context, f model.DigitalFile) (model.ShareResult, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(model.ShareResult), args.Error(1)
}

type MockTreatmentService struct {
	mock.Mock
}

func (m *MockTreatmentService) List(ctx context.Context, patientID int) ([]model.Treatment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Treatment), args.Error(1)
}

func (m *MockTreatmentService) Add(ctx context.Context, patientID int, in model.NewTreatment) (*model.Treatment, error) {
	args := m.Called(ctx, patientID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Treatment), args.Error(1)
}

type MockDiagnosisService struct {
	mock.Mock
}

func (m *MockDiagnosisService) Suggest(ctx context.Context, patientID int, req model.DiagnosisRequest) (*model.DiagnosisSuggestion, error) {
	args := m.Called(ctx, patientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiagnosisSuggestion), args.Error(1)
}

type MockSuggester struct {
	mock.Mock
}

func (m *MockSuggester) Suggest(ctx context.Context, req model.DiagnosisRequest) (*model.DiagnosisSuggestion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiagnosisSuggestion), args.Error(1)
}
