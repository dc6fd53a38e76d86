package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vincent-petithory/dataurl"

	"clinicapi/internal/model"
	"clinicapi/internal/storage"
)

var (
	// ErrNotDataURL is returned when an upload does not embed its content.
	ErrNotDataURL = errors.New("remote uploads require a data URL")
	// ErrNotStored is returned when sharing a file that has no object key.
	ErrNotStored = errors.New("file is not stored in object storage")
)

const (
	metaFileName = "original-filename"
	metaHint     = "hint"
	metaFileType = "file-type"
)

// ObjectProvider keeps patient files in an S3-compatible bucket under
// "patients/<id>/". The object key is used as the file URL and is turned into
// a pre-signed link when shared.
type ObjectProvider struct {
	store  storage.Storage
	expiry time.Duration
	log    zerolog.Logger
}

var _ Provider = (*ObjectProvider)(nil)

// NewObjectProvider creates a provider on top of store. Shared links expire after expiry.
func NewObjectProvider(store storage.Storage, expiry time.Duration, log zerolog.Logger) *ObjectProvider {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &ObjectProvider{store: store, expiry: expiry, log: log}
}

func patientPrefix(patientID int) string {
	return fmt.Sprintf("patients/%d/", patientID)
}

func (p *ObjectProvider) Name() string { return "object" }

func (p *ObjectProvider) StoresFiles() bool { return true }

func (p *ObjectProvider) ListFiles(ctx context.Context, patientID int) ([]model.DigitalFile, error) {
	objs, err := p.store.List(ctx, patientPrefix(patientID))
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	files := make([]model.DigitalFile, 0, len(objs))
	for _, o := range objs {
		name := metaValue(o.Metadata, metaFileName)
		if name == "" {
			name = path.Base(o.Key)
		}
		ft := model.FileType(metaValue(o.Metadata, metaFileType))
		if !ft.Valid() {
			ft = fileTypeFromContentType(o.ContentType)
		}
		files = append(files, model.DigitalFile{
			Name:     name,
			URL:      o.Key,
			Type:     ft,
			Hint:     metaValue(o.Metadata, metaHint),
			Provider: model.ProviderRemote,
		})
	}
	return files, nil
}

func (p *ObjectProvider) AddFile(ctx context.Context, patientID int, f model.NewFile) (model.DigitalFile, error) {
	if !strings.HasPrefix(f.URL, "data:") {
		return model.DigitalFile{}, ErrNotDataURL
	}
	du, err := dataurl.DecodeString(f.URL)
	if err != nil {
		return model.DigitalFile{}, fmt.Errorf("decode data url: %w", err)
	}

	key := patientPrefix(patientID) + uuid.NewString() + path.Ext(f.Name)
	meta := map[string]string{
		metaFileName: f.Name,
		metaFileType: string(f.Type),
	}
	if f.Hint != "" {
		meta[metaHint] = f.Hint
	}

	info, err := p.store.Put(ctx, key, bytes.NewReader(du.Data), storage.PutObjectOptions{
		Size:        int64(len(du.Data)),
		ContentType: du.MediaType.ContentType(),
		Metadata:    meta,
	})
	if err != nil {
		return model.DigitalFile{}, fmt.Errorf("upload to storage: %w", err)
	}

	p.log.Info().
		Int("patient_id", patientID).
		Str("key", info.Key).
		Int64("size", info.Size).
		Msg("remote_file_uploaded")

	stored := f
	stored.URL = info.Key
	return stored.WithProvider(model.ProviderRemote), nil
}

func (p *ObjectProvider) ShareURL(ctx context.Context, f model.DigitalFile) (string, error) {
	if !strings.HasPrefix(f.URL, "patients/") {
		return "", ErrNotStored
	}
	u, err := p.store.PresignGet(ctx, f.URL, p.expiry)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return u, nil
}

// metaValue looks a key up in S3 user metadata, which servers may return
// canonicalised and with the x-amz-meta- prefix.
func metaValue(meta map[string]string, key string) string {
	if v, ok := meta[key]; ok {
		return v
	}
	for k, v := range meta {
		k = strings.ToLower(k)
		k = strings.TrimPrefix(k, "x-amz-meta-")
		if k == key {
			return v
		}
	}
	return ""
}

func fileTypeFromContentType(ct string) model.FileType {
	ct = strings.ToLower(ct)
	switch {
	case strings.HasPrefix(ct, "image/"):
		return model.FileTypeImage
	case ct == "application/pdf",
		strings.HasPrefix(ct, "text/"),
		strings.Contains(ct, "msword"),
		strings.Contains(ct, "officedocument"):
		return model.FileTypeDoc
	default:
		return model.FileTypeOther
	}
}
