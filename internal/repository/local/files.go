package local

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"clinicapi/internal/model"
	"clinicapi/internal/remote"
	"clinicapi/internal/repository"
	"clinicapi/internal/storage"
)

const (
	shareErrRemoteDisabled = "remote storage integration is not enabled"
	shareErrNotShareable   = "this file cannot be shared directly; only local files with data URLs are copyable"
)

// Files is a FileRepository backed by a JSON object document keyed by patient id.
// When a remote provider is set its listing is concatenated in front of the local one.
type Files struct {
	backend storage.Backend[model.FilesIndex]
	remote  remote.Provider
	log     zerolog.Logger
}

var _ repository.FileRepository = (*Files)(nil)

// NewFiles creates the file repository. provider may be nil, which disables remote storage.
func NewFiles(backend storage.Backend[model.FilesIndex], provider remote.Provider, log zerolog.Logger) *Files {
	return &Files{backend: backend, remote: provider, log: log}
}

func patientKey(id int) string {
	return strconv.Itoa(id)
}

// ListForPatient returns remote files (when enabled) followed by local files.
// Equivalent entries from both sources are not deduplicated.
func (r *Files) ListForPatient(ctx context.Context, patientID int) ([]model.DigitalFile, error) {
	var remoteFiles []model.DigitalFile
	if r.remote != nil {
		var err error
		remoteFiles, err = r.remote.ListFiles(ctx, patientID)
		if err != nil {
			return nil, fmt.Errorf("list %s files: %w", r.remote.Name(), err)
		}
	}

	localFiles, err := r.listLocal(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := make([]model.DigitalFile, 0, len(remoteFiles)+len(localFiles))
	out = append(out, remoteFiles...)
	out = append(out, localFiles...)
	return out, nil
}

// AddForPatient stores a new file. With a remote provider the file is handed to
// the provider and tagged remote. It is also recorded in the local index unless
// the provider persists it itself, so every upload is listed exactly once.
func (r *Files) AddForPatient(ctx context.Context, patientID int, f model.NewFile) (*model.DigitalFile, error) {
	stored := f.WithProvider(model.ProviderLocal)
	if r.remote != nil {
		var err error
		stored, err = r.remote.AddFile(ctx, patientID, f)
		if err != nil {
			return nil, fmt.Errorf("add %s file: %w", r.remote.Name(), err)
		}
		stored.Provider = model.ProviderRemote
	}

	if r.remote == nil || !r.remote.StoresFiles() {
		if err := r.appendLocal(ctx, patientID, stored); err != nil {
			return nil, err
		}
	}

	r.log.Info().
		Int("patient_id", patientID).
		Str("file_name", stored.Name).
		Str("provider", string(stored.Provider)).
		Msg("file_added")
	return &stored, nil
}

// Share applies the sharing policy:
//
//	remote + provider enabled  -> provider URL
//	remote + provider disabled -> failure
//	local  + data URL          -> the data URL itself
//	local  + anything else     -> failure
func (r *Files) Share(ctx context.Context, f model.DigitalFile) (model.ShareResult, error) {
	if f.Provider == model.ProviderRemote {
		if r.remote == nil {
			return model.ShareResult{Success: false, Error: shareErrRemoteDisabled}, nil
		}
		u, err := r.remote.ShareURL(ctx, f)
		if err != nil {
			return model.ShareResult{}, fmt.Errorf("share %s file: %w", r.remote.Name(), err)
		}
		return model.ShareResult{Success: true, URL: u}, nil
	}

	if f.Provider == model.ProviderLocal && f.IsDataURL() {
		return model.ShareResult{Success: true, URL: f.URL}, nil
	}

	r.log.Debug().Str("file_name", f.Name).Msg("share_not_available")
	return model.ShareResult{Success: false, Error: shareErrNotShareable}, nil
}

func (r *Files) listLocal(ctx context.Context, patientID int) ([]model.DigitalFile, error) {
	index, err := r.backend.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read files: %w", err)
	}
	files := index[patientKey(patientID)]
	if files == nil {
		return []model.DigitalFile{}, nil
	}
	return files, nil
}

func (r *Files) appendLocal(ctx context.Context, patientID int, f model.DigitalFile) error {
	index, err := r.backend.Read(ctx)
	if err != nil {
		return fmt.Errorf("read files: %w", err)
	}
	if index == nil {
		index = model.FilesIndex{}
	}
	key := patientKey(patientID)
	index[key] = append(index[key], f)

	if err := r.backend.Write(ctx, index); err != nil {
		return fmt.Errorf("write files: %w", err)
	}
	return nil
}
