package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom-backend/internal/config"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name     string
		original string
		want     string
	}{
		{"simple", "logo.png", "logo.png"},
		{"uppercase extension", "PHOTO.JPG", "PHOTO.jpg"},
		{"spaces and parens stripped", "my photo (1).jpeg", "myphoto1.jpeg"},
		{"vietnamese stripped", "ảnh bìa.png", "nhba.png"},
		{"multiple dots keep first base last ext", "archive.tar.gz", "archive.gz"},
		{"no extension", "logo", "logo.jpg"},
		{"dotfile", ".gitignore", "image.gitignore"},
		{"only strange chars", "ảnh ()", "image.jpg"},
		{"empty", "", "image.jpg"},
		{"underscores and dashes kept", "bia_chinh-v2.webp", "bia_chinh-v2.webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.original))
		})
	}
}

func TestSanitizeFileNameDeterministic(t *testing.T) {
	assert.Equal(t, SanitizeFileName("ảnh bìa (1).JPG"), SanitizeFileName("ảnh bìa (1).JPG"))
}

func newLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(config.StorageConfig{
		LocalDir: t.TempDir(),
		BaseURL:  "/uploads",
	})
	require.NoError(t, err)
	return s
}

func TestLocalStorageSave(t *testing.T) {
	s := newLocalStorage(t)
	ctx := context.Background()

	url, created, err := s.Save(ctx, "logo.png", []byte("image-bytes"), "image/png")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "/uploads/logo.png", url)

	data, err := s.Read(ctx, "logo.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestLocalStorageSaveExistingNameKeepsOldFile(t *testing.T) {
	s := newLocalStorage(t)
	ctx := context.Background()

	_, created, err := s.Save(ctx, "logo.png", []byte("original"), "image/png")
	require.NoError(t, err)
	require.True(t, created)

	url, created, err := s.Save(ctx, "logo.png", []byte("khác hoàn toàn"), "image/png")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "/uploads/logo.png", url)

	data, err := s.Read(ctx, "logo.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), data)
}

func TestLocalStorageExists(t *testing.T) {
	s := newLocalStorage(t)
	ctx := context.Background()

	exists, err := s.Exists(ctx, "missing.png")
	require.NoError(t, err)
	assert.False(t, exists)

	_, _, err = s.Save(ctx, "logo.png", []byte("x"), "image/png")
	require.NoError(t, err)

	exists, err = s.Exists(ctx, "logo.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorageDelete(t *testing.T) {
	s := newLocalStorage(t)
	ctx := context.Background()

	_, _, err := s.Save(ctx, "logo.png", []byte("x"), "image/png")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "logo.png"))

	exists, err := s.Exists(ctx, "logo.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// Xóa file không tồn tại không phải lỗi
	assert.NoError(t, s.Delete(ctx, "logo.png"))
}

func TestLocalStorageList(t *testing.T) {
	s := newLocalStorage(t)
	ctx := context.Background()

	files, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)

	_, _, err = s.Save(ctx, "a.png", []byte("aaa"), "image/png")
	require.NoError(t, err)
	_, _, err = s.Save(ctx, "b.jpg", []byte("b"), "image/jpeg")
	require.NoError(t, err)

	files, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)

	names := map[string]int64{}
	for _, f := range files {
		names[f.Name] = f.Size
	}
	assert.Equal(t, int64(3), names["a.png"])
	assert.Equal(t, int64(1), names["b.jpg"])
}

func TestVariantName(t *testing.T) {
	assert.Equal(t, "logo_large.jpg", VariantName("logo.png", "large"))
	assert.Equal(t, "anh-bia_thumbnail.jpg", VariantName("anh-bia.jpeg", "thumbnail"))
	assert.Equal(t, "photo_medium.jpg", VariantName("photo", "medium"))
}
