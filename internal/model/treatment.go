package model

import "time"

// TreatmentDateLayout is the calendar date format used for treatment entries.
const TreatmentDateLayout = "2006-01-02"

// Treatment is one entry on a patient's treatment timeline.
type Treatment struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patientId"`
	Date      string    `json:"date"`
	Treatment string    `json:"treatment"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTreatment carries the caller-supplied fields of a treatment entry.
type NewTreatment struct {
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Treatment string `json:"treatment" validate:"notblank"`
	Notes     string `json:"notes"`
}
