package remote

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinicapi/internal/model"
	"clinicapi/internal/storage"
	storeMocks "clinicapi/internal/storage/mocks"
)

func TestObjectProvider_ListFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("maps objects", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("List", ctx, "patients/3/").Return([]storage.ObjectInfo{
			{
				Key:         "patients/3/a.jpg",
				ContentType: "image/jpeg",
				Metadata:    map[string]string{"X-Amz-Meta-Original-Filename": "xray.jpg", "X-Amz-Meta-Hint": "dental x-ray"},
			},
			{Key: "patients/3/b.pdf", ContentType: "application/pdf"},
			{Key: "patients/3/c.bin", ContentType: "application/octet-stream", Metadata: map[string]string{"file-type": "doc"}},
		}, nil)

		p := NewObjectProvider(mStore, time.Minute, zerolog.Nop())
		files, err := p.ListFiles(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, []model.DigitalFile{
			{Name: "xray.jpg", URL: "patients/3/a.jpg", Type: model.FileTypeImage, Hint: "dental x-ray", Provider: model.ProviderRemote},
			{Name: "b.pdf", URL: "patients/3/b.pdf", Type: model.FileTypeDoc, Provider: model.ProviderRemote},
			{Name: "c.bin", URL: "patients/3/c.bin", Type: model.FileTypeDoc, Provider: model.ProviderRemote},
		}, files)
		mStore.AssertExpectations(t)
	})

	t.Run("empty prefix", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("List", ctx, "patients/9/").Return(nil, nil)

		files, err := NewObjectProvider(mStore, 0, zerolog.Nop()).ListFiles(ctx, 9)

		require.NoError(t, err)
		assert.NotNil(t, files)
		assert.Empty(t, files)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("List", ctx, "patients/1/").Return(nil, errors.New("boom"))

		_, err := NewObjectProvider(mStore, 0, zerolog.Nop()).ListFiles(ctx, 1)

		assert.EqualError(t, err, "list objects: boom")
	})
}

func TestObjectProvider_AddFile(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads decoded content", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		var uploaded string
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "patients/5/") && strings.HasSuffix(key, ".txt")
		}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.Size == 5 &&
				opt.ContentType == "text/plain" &&
				opt.Metadata[metaFileName] == "note.txt" &&
				opt.Metadata[metaFileType] == "doc"
		})).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			b, _ := io.ReadAll(r)
			uploaded = string(b)
			return storage.ObjectInfo{Key: key, Size: opt.Size}
		}, nil)

		p := NewObjectProvider(mStore, time.Minute, zerolog.Nop())
		got, err := p.AddFile(ctx, 5, model.NewFile{Name: "note.txt", URL: "data:text/plain;base64,aGVsbG8=", Type: model.FileTypeDoc})

		require.NoError(t, err)
		assert.Equal(t, "hello", uploaded)
		assert.Equal(t, "note.txt", got.Name)
		assert.Equal(t, model.ProviderRemote, got.Provider)
		assert.True(t, strings.HasPrefix(got.URL, "patients/5/"))
		assert.True(t, p.StoresFiles())
		mStore.AssertExpectations(t)
	})

	t.Run("rejects non data url", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		_, err := NewObjectProvider(mStore, 0, zerolog.Nop()).AddFile(ctx, 5, model.NewFile{Name: "x", URL: "https://example.com/x.png"})

		assert.ErrorIs(t, err, ErrNotDataURL)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, errors.New("down"))

		_, err := NewObjectProvider(mStore, 0, zerolog.Nop()).AddFile(ctx, 5, model.NewFile{Name: "n.txt", URL: "data:text/plain;base64,aGVsbG8="})

		assert.EqualError(t, err, "upload to storage: down")
	})
}

func TestObjectProvider_ShareURL(t *testing.T) {
	ctx := context.Background()

	mStore := new(storeMocks.MockStorage)
	mStore.On("PresignGet", ctx, "patients/1/a.jpg", 2*time.Minute).Return("https://minio.local/signed", nil)
	p := NewObjectProvider(mStore, 2*time.Minute, zerolog.Nop())

	u, err := p.ShareURL(ctx, model.DigitalFile{URL: "patients/1/a.jpg", Provider: model.ProviderRemote})
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/signed", u)

	_, err = p.ShareURL(ctx, model.DigitalFile{URL: "data:image/png;base64,AAAA", Provider: model.ProviderRemote})
	assert.ErrorIs(t, err, ErrNotStored)
	mStore.AssertExpectations(t)
}
