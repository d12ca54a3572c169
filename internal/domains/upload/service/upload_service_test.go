package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom-backend/internal/domains/upload"
	"newsroom-backend/internal/infrastructure/storage"
)

type stubStorage struct {
	saved    map[string][]byte
	lastName string
	lastType string
}

func newStubStorage() *stubStorage {
	return &stubStorage{saved: map[string][]byte{}}
}

func (s *stubStorage) Save(_ context.Context, name string, data []byte, contentType string) (string, bool, error) {
	s.lastName = name
	s.lastType = contentType
	if _, exists := s.saved[name]; exists {
		return s.URL(name), false, nil
	}
	s.saved[name] = data
	return s.URL(name), true, nil
}

func (s *stubStorage) Read(_ context.Context, name string) ([]byte, error) {
	data, ok := s.saved[name]
	if !ok {
		return nil, assert.AnError
	}
	return data, nil
}

func (s *stubStorage) Exists(_ context.Context, name string) (bool, error) {
	_, ok := s.saved[name]
	return ok, nil
}

func (s *stubStorage) Delete(_ context.Context, name string) error {
	delete(s.saved, name)
	return nil
}

func (s *stubStorage) List(context.Context) ([]storage.FileInfo, error) {
	infos := make([]storage.FileInfo, 0, len(s.saved))
	for name := range s.saved {
		infos = append(infos, storage.FileInfo{Name: name})
	}
	return infos, nil
}

func (s *stubStorage) URL(name string) string {
	return "/uploads/" + name
}

func TestUpload(t *testing.T) {
	store := newStubStorage()
	svc := NewUploadService(store, nil)

	resp, err := svc.Upload(context.Background(), "Ảnh bìa (1).JPG", "image/jpeg", []byte("fake-jpeg"))
	require.NoError(t, err)

	assert.Equal(t, "nhba1.jpg", resp.FileName)
	assert.Equal(t, "/uploads/nhba1.jpg", resp.URL)
	assert.Equal(t, "image/jpeg", store.lastType)
}

func TestUploadEmptyFile(t *testing.T) {
	store := newStubStorage()
	svc := NewUploadService(store, nil)

	_, err := svc.Upload(context.Background(), "logo.png", "image/png", nil)
	assert.ErrorIs(t, err, upload.ErrEmptyFile)
	assert.Empty(t, store.saved)
}

func TestUploadDisallowedType(t *testing.T) {
	store := newStubStorage()
	svc := NewUploadService(store, nil)

	for _, contentType := range []string{"application/pdf", "text/html", "image/svg+xml", ""} {
		_, err := svc.Upload(context.Background(), "doc.pdf", contentType, []byte("data"))
		assert.ErrorIs(t, err, upload.ErrFileTypeNotAllowed, "contentType=%q", contentType)
	}
	assert.Empty(t, store.saved)
}

func TestUploadSameNameReusesStoredFile(t *testing.T) {
	store := newStubStorage()
	svc := NewUploadService(store, nil)

	first, err := svc.Upload(context.Background(), "logo.png", "image/png", []byte("original"))
	require.NoError(t, err)

	second, err := svc.Upload(context.Background(), "logo.png", "image/png", []byte("different-bytes"))
	require.NoError(t, err)

	assert.Equal(t, first.URL, second.URL)
	// Nội dung cũ được giữ nguyên, không bị ghi đè
	assert.Equal(t, []byte("original"), store.saved["logo.png"])
}
