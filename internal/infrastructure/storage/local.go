package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"newsroom-backend/internal/config"
)

// LocalStorage ghi uploads xuống filesystem, serve qua static route.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(cfg config.StorageConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", cfg.LocalDir, err)
	}
	return &LocalStorage{dir: cfg.LocalDir, baseURL: cfg.BaseURL}, nil
}

func (s *LocalStorage) Save(ctx context.Context, name string, data []byte, contentType string) (string, bool, error) {
	path := filepath.Join(s.dir, name)

	// Tên đã tồn tại → giữ file cũ, trả URL cũ (idempotent theo tên)
	if _, err := os.Stat(path); err == nil {
		log.Info().Str("file", name).Msg("Upload name already exists, reusing stored file")
		return s.URL(name), false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return s.URL(name), true, nil
}

func (s *LocalStorage) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (s *LocalStorage) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *LocalStorage) Delete(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

func (s *LocalStorage) List(ctx context.Context) ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.dir, err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

func (s *LocalStorage) URL(name string) string {
	return s.baseURL + "/" + name
}
