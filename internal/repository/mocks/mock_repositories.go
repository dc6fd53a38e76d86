package mocks

import (
	"context"

	"clinicapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) List(ctx context.Context) ([]model.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id int) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) Add(ctx context.Context, p model.NewPatient) (*model.Patient, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) ListForPatient(ctx context.Context, patientID int) ([]model.DigitalFile, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DigitalFile), args.Error(1)
}

func (m *MockFileRepository) AddForPatient(ctx context.Context, patientID int, f model.NewFile) (*model.DigitalFile, error) {
	args := m.Called(ctx, patientID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DigitalFile), args.Error(1)
}

func (m *MockFileRepository) Share(ctx context.Context, f model.DigitalFile) (model.ShareResult, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(model.ShareResult), args.Error(1)
}

type MockTreatmentRepository struct {
	mock.Mock
}

func (m *MockTreatmentRepository) ListForPatient(ctx context.Context, patientID int) ([]model.Treatment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Treatment), args.Error(1)
}

func (m *MockTreatmentRepository) Add(ctx context.Context, patientID int, t model.NewTreatment) (*model.Treatment, error) {
	args := m.Called(ctx, patientID, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Treatment), args.Error(1)
}
