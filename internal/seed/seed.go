// Package seed bootstraps an empty patient store with the demo clinic records.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"clinicapi/internal/model"
	"clinicapi/internal/repository"
)

// DemoPatients are added in order, so they receive ids 1 to 5 on an empty store.
var DemoPatients = []model.NewPatient{
	{
		Name:           "Jane Doe",
		Phone:          "555-0101",
		Email:          "jane.doe@example.com",
		DateOfBirth:    "1985-05-23",
		MedicalHistory: "No known allergies. Non-smoker.",
		DentalHistory:  "Regular check-ups. Previous filling on tooth 14.",
	},
	{
		Name:           "John Smith",
		Phone:          "555-0102",
		Email:          "john.smith@example.com",
		DateOfBirth:    "1978-11-12",
		MedicalHistory: "Allergic to penicillin.",
		DentalHistory:  "Wisdom teeth removed in 2005. Grinds teeth at night.",
	},
	{
		Name:           "Emily Johnson",
		Phone:          "555-0103",
		Email:          "emily.j@example.com",
		DateOfBirth:    "1992-02-29",
		MedicalHistory: "Asthma, uses an inhaler as needed.",
		DentalHistory:  "Orthodontic treatment (braces) from 2008-2010.",
	},
	{
		Name:           "Michael Brown",
		Phone:          "555-0104",
		Email:          "michael.b@example.com",
		DateOfBirth:    "1965-09-15",
		MedicalHistory: "High blood pressure, managed with medication.",
		DentalHistory:  "Crown on tooth 3, bridge from 4-6.",
	},
	{
		Name:           "Sarah Wilson",
		Phone:          "555-0105",
		Email:          "sarah.w@example.com",
		DateOfBirth:    "2001-07-21",
		MedicalHistory: "None.",
		DentalHistory:  "Sealants on molars.",
	},
}

// Patients adds DemoPatients when repo holds no patients and returns how many were added.
// A non-empty store is left untouched.
func Patients(ctx context.Context, repo repository.PatientRepository, log zerolog.Logger) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Int("existing", len(existing)).Msg("seed_skipped")
		return 0, nil
	}

	for i, p := range DemoPatients {
		if _, err := repo.Add(ctx, p); err != nil {
			return i, fmt.Errorf("seed %q: %w", p.Name, err)
		}
	}
	log.Info().Int("count", len(DemoPatients)).Msg("seed_completed")
	return len(DemoPatients), nil
}
