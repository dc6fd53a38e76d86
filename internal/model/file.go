package model

import "strings"

// FileType classifies a digital file for display.
type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeDoc   FileType = "doc"
	FileTypeOther FileType = "other"
)

// Valid reports whether t is one of the known file types.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeImage, FileTypeDoc, FileTypeOther:
		return true
	}
	return false
}

// Provider names the backend that produced and stores a file.
type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderRemote Provider = "remote"
)

// DigitalFile is a patient attachment. It has no identity of its own and is
// addressed only by its position in the patient's file list.
type DigitalFile struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Type     FileType `json:"type"`
	Hint     string   `json:"hint,omitempty"`
	Provider Provider `json:"provider"`
}

// IsDataURL reports whether the file content is embedded in its URL.
func (f DigitalFile) IsDataURL() bool {
	return strings.HasPrefix(f.URL, "data:")
}

// NewFile is a DigitalFile before the repository tags its provider.
type NewFile struct {
	Name string   `json:"name" validate:"notblank"`
	URL  string   `json:"url"`
	Type FileType `json:"type" validate:"oneof=image doc other"`
	Hint string   `json:"hint,omitempty"`
}

// WithProvider returns the stored form of f.
func (f NewFile) WithProvider(p Provider) DigitalFile {
	return DigitalFile{
		Name:     f.Name,
		URL:      f.URL,
		Type:     f.Type,
		Hint:     f.Hint,
		Provider: p,
	}
}

// FilesIndex maps a patient id (as a decimal string key) to its files in upload order.
type FilesIndex map[string][]DigitalFile

// ShareResult is the outcome of a share request. Error is set only when Success is false.
type ShareResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}
