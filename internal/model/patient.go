package model

// PlaceholderAvatarURL is assigned to every newly created patient.
const PlaceholderAvatarURL = "https://placehold.co/100x100.png"

// Patient is a clinic patient record. IDs are assigned by the repository and never reused.
type Patient struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	DateOfBirth    string `json:"dateOfBirth"`
	MedicalHistory string `json:"medicalHistory"`
	DentalHistory  string `json:"dentalHistory"`
	AvatarURL      string `json:"avatarUrl"`
}

// NewPatient carries the caller-supplied fields of a patient; ID and avatar are assigned on add.
type NewPatient struct {
	Name           string `json:"name" validate:"notblank"`
	Phone          string `json:"phone" validate:"notblank"`
	Email          string `json:"email" validate:"required,email"`
	DateOfBirth    string `json:"dateOfBirth" validate:"notblank"`
	MedicalHistory string `json:"medicalHistory" validate:"notblank"`
	DentalHistory  string `json:"dentalHistory" validate:"notblank"`
}
