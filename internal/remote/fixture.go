package remote

import (
	"context"

	"github.com/rs/zerolog"

	"clinicapi/internal/model"
)

// FixtureShareURL is the link returned for every file shared through the fixture provider.
const FixtureShareURL = "https://docs.google.com/a/example.com/file/d/mock_id/view?usp=sharing_eip_se_im"

// fixtureFileURL replaces the content of files uploaded through the fixture provider.
const fixtureFileURL = "https://placehold.co/400x400.png"

// Fixture stands in for a cloud drive that has not been integrated yet.
// Every patient sees the same two files and uploads are only logged.
type Fixture struct {
	log zerolog.Logger
}

var _ Provider = (*Fixture)(nil)

// NewFixture returns the stub provider.
func NewFixture(log zerolog.Logger) *Fixture {
	return &Fixture{log: log}
}

func (p *Fixture) Name() string { return "fixture" }

// StoresFiles is false: the fixture listing is static and ignores uploads.
func (p *Fixture) StoresFiles() bool { return false }

func (p *Fixture) ListFiles(ctx context.Context, patientID int) ([]model.DigitalFile, error) {
	p.log.Debug().Int("patient_id", patientID).Msg("remote_list_fixture")
	return []model.DigitalFile{
		{
			Name:     "panoramic_xray_gdrive.jpg",
			URL:      fixtureFileURL,
			Type:     model.FileTypeImage,
			Hint:     "dental x-ray",
			Provider: model.ProviderRemote,
		},
		{
			Name:     "referral_letter_gdrive.pdf",
			URL:      "",
			Type:     model.FileTypeDoc,
			Provider: model.ProviderRemote,
		},
	}, nil
}

func (p *Fixture) AddFile(ctx context.Context, patientID int, f model.NewFile) (model.DigitalFile, error) {
	p.log.Info().
		Int("patient_id", patientID).
		Str("file_name", f.Name).
		Msg("remote_upload_not_implemented")
	return f.WithProvider(model.ProviderRemote), nil
}

func (p *Fixture) ShareURL(ctx context.Context, f model.DigitalFile) (string, error) {
	p.log.Info().Str("file_name", f.Name).Msg("remote_share_fixture")
	return FixtureShareURL, nil
}
