package service

import (
	"context"
	"strings"

	"clinicapi/internal/model"
	"clinicapi/internal/repository"
)

// FileService defines the digital file use cases.
type FileService interface {
	// List returns a patient's files. A patient without files yields an empty slice.
	List(ctx context.Context, patientID int) ([]model.DigitalFile, error)

	// Add validates and stores a new file for the patient.
	Add(ctx context.Context, patientID int, f model.NewFile) (*model.DigitalFile, error)

	// Share applies the sharing policy to a file previously returned by List.
	Share(ctx context.Context, f model.DigitalFile) (model.ShareResult, error)
}

type fileService struct {
	repo repository.FileRepository
}

// NewFileService constructs a new FileService.
func NewFileService(repo repository.FileRepository) FileService {
	return &fileService{repo: repo}
}

func (s *fileService) List(ctx context.Context, patientID int) ([]model.DigitalFile, error) {
	if err := checkID(patientID); err != nil {
		return nil, err
	}
	return s.repo.ListForPatient(ctx, patientID)
}

func (s *fileService) Add(ctx context.Context, patientID int, f model.NewFile) (*model.DigitalFile, error) {
	if err := checkID(patientID); err != nil {
		return nil, err
	}
	f.Name = strings.TrimSpace(f.Name)
	if f.Type == "" {
		f.Type = model.FileTypeOther
	}
	if err := validateStruct(f); err != nil {
		return nil, err
	}
	return s.repo.AddForPatient(ctx, patientID, f)
}

func (s *fileService) Share(ctx context.Context, f model.DigitalFile) (model.ShareResult, error) {
	switch f.Provider {
	case model.ProviderLocal, model.ProviderRemote:
	default:
		return model.ShareResult{}, ErrUnknownFileProvider
	}
	return s.repo.Share(ctx, f)
}
