package local

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicapi/internal/model"
)

func TestTreatments_AddAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewTreatments(treatmentsFile(t))
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	first, err := repo.Add(ctx, 1, model.NewTreatment{Date: "2024-03-01", Treatment: "Cleaning"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, fixed, first.CreatedAt)

	_, err = repo.Add(ctx, 2, model.NewTreatment{Date: "2024-03-02", Treatment: "X-ray"})
	require.NoError(t, err)

	third, err := repo.Add(ctx, 1, model.NewTreatment{Date: "2024-03-03", Treatment: "Composite filling on #14", Notes: "No complications"})
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)

	list, err := repo.ListForPatient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, *third, list[0])
	assert.Equal(t, *first, list[1])

	none, err := repo.ListForPatient(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTreatments_Errors(t *testing.T) {
	ctx := context.Background()

	repo := NewTreatments(&failingBackend[[]model.Treatment]{readErr: errors.New("eio")})
	_, err := repo.ListForPatient(ctx, 1)
	assert.EqualError(t, err, "read treatments: eio")

	repo = NewTreatments(&failingBackend[[]model.Treatment]{writeErr: errors.New("full")})
	_, err = repo.Add(ctx, 1, model.NewTreatment{Treatment: "x"})
	assert.EqualError(t, err, "write treatments: full")
}
