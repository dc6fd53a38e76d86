package postgres

import (
	"context"
	"database/sql"

	"clinicapi/internal/model"
	"clinicapi/internal/repository"
)

// TreatmentPostgres is a PostgreSQL implementation of repository.TreatmentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type TreatmentPostgres struct {
	db *sql.DB
}

// NewTreatmentPostgres creates a new TreatmentPostgres repository.
func NewTreatmentPostgres(db *sql.DB) *TreatmentPostgres {
	return &TreatmentPostgres{db: db}
}

var _ repository.TreatmentRepository = (*TreatmentPostgres)(nil)

// ListForPatient returns a patient's treatments, newest first.
func (r *TreatmentPostgres) ListForPatient(ctx context.Context, patientID int) ([]model.Treatment, error) {
	const q = `
		SELECT id, patient_id, date, treatment, notes, created_at
		FROM treatments
		WHERE patient_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Treatment, 0)
	for rows.Next() {
		var t model.Treatment
		if err := rows.Scan(
			&t.ID,
			&t.PatientID,
			&t.Date,
			&t.Treatment,
			&t.Notes,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Add inserts a treatment row and returns the stored record.
func (r *TreatmentPostgres) Add(ctx context.Context, patientID int, in model.NewTreatment) (*model.Treatment, error) {
	const q = `
		INSERT INTO treatments (patient_id, date, treatment, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, patient_id, date, treatment, notes, created_at
	`
	row := r.db.QueryRowContext(ctx, q, patientID, in.Date, in.Treatment, in.Notes)
	var out model.Treatment
	if err := row.Scan(
		&out.ID,
		&out.PatientID,
		&out.Date,
		&out.Treatment,
		&out.Notes,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}
