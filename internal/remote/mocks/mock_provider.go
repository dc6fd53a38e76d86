package mocks

import (
	"context"

	"clinicapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
	Stores bool
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) StoresFiles() bool {
	return m.Stores
}

func (m *MockProvider) ListFiles(ctx context.Context, patientID int) ([]model.DigitalFile, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DigitalFile), args.Error(1)
}

func (m *MockProvider) AddFile(ctx context.Context, patientID int, f model.NewFile) (model.DigitalFile, error) {
	args := m.Called(ctx, patientID, f)
	return args.Get(0).(model.DigitalFile), args.Error(1)
}

func (m *MockProvider) ShareURL(ctx context.Context, f model.DigitalFile) (string, error) {
	args := m.Called(ctx, f)
	return args.String(0), args.Error(1)
}
