package service

import (
	"context"
	"testing"
	"time"

	"clinicapi/internal/model"
	repoMocks "clinicapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreatmentService_Add(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("clinic", -5*3600)

	t.Run("defaults date to today in clinic timezone", func(t *testing.T) {
		mPatients := new(repoMocks.MockPatientRepository)
		mTreatments := new(repoMocks.MockTreatmentRepository)
		mPatients.On("GetByID", ctx, 1).Return(&model.Patient{ID: 1}, nil)
		want := model.NewTreatment{Date: "2024-02-29", Treatment: "Cleaning"}
		mTreatments.On("Add", ctx, 1, want).Return(&model.Treatment{ID: 1, PatientID: 1, Date: want.Date, Treatment: want.Treatment}, nil)

		svc := NewTreatmentService(mPatients, mTreatments, loc).(*treatmentService)
		svc.now = func() time.Time { return time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC) }

		got, err := svc.Add(ctx, 1, model.NewTreatment{Treatment: " Cleaning "})

		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", got.Date)
		mTreatments.AssertExpectations(t)
	})

	t.Run("unknown patient", func(t *testing.T) {
		mPatients := new(repoMocks.MockPatientRepository)
		mTreatments := new(repoMocks.MockTreatmentRepository)
		mPatients.On("GetByID", ctx, 7).Return(nil, nil)

		_, err := NewTreatmentService(mPatients, mTreatments, nil).Add(ctx, 7, model.NewTreatment{Treatment: "x"})

		assert.ErrorIs(t, err, ErrNotFound)
		mTreatments.AssertNotCalled(t, "Add")
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := NewTreatmentService(nil, nil, nil).Add(ctx, 1, model.NewTreatment{Date: "03/01/2024", Treatment: "x"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "must be a date formatted as YYYY-MM-DD", verr.Fields["date"])
	})

	t.Run("missing treatment", func(t *testing.T) {
		_, err := NewTreatmentService(nil, nil, nil).Add(ctx, 1, model.NewTreatment{Date: "2024-01-01"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "treatment")
	})
}

func TestTreatmentService_List(t *testing.T) {
	ctx := context.Background()
	mPatients := new(repoMocks.MockPatientRepository)
	mTreatments := new(repoMocks.MockTreatmentRepository)
	mPatients.On("GetByID", ctx, 1).Return(&model.Patient{ID: 1}, nil)
	mPatients.On("GetByID", ctx, 2).Return(nil, nil)
	mTreatments.On("ListForPatient", ctx, 1).Return([]model.Treatment{{ID: 3}, {ID: 1}}, nil)
	svc := NewTreatmentService(mPatients, mTreatments, nil)

	items, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = svc.List(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}
