package job

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom-backend/internal/domains/article"
	"newsroom-backend/internal/infrastructure/queue"
	"newsroom-backend/internal/infrastructure/storage"
)

type sweepStorage struct {
	files map[string]time.Time
}

func (s *sweepStorage) Save(_ context.Context, name string, _ []byte, _ string) (string, bool, error) {
	s.files[name] = time.Now()
	return s.URL(name), true, nil
}

func (s *sweepStorage) Read(_ context.Context, name string) ([]byte, error) {
	return nil, assert.AnError
}

func (s *sweepStorage) Exists(_ context.Context, name string) (bool, error) {
	_, ok := s.files[name]
	return ok, nil
}

func (s *sweepStorage) Delete(_ context.Context, name string) error {
	delete(s.files, name)
	return nil
}

func (s *sweepStorage) List(context.Context) ([]storage.FileInfo, error) {
	infos := make([]storage.FileInfo, 0, len(s.files))
	for name, mod := range s.files {
		infos = append(infos, storage.FileInfo{Name: name, ModTime: mod})
	}
	return infos, nil
}

func (s *sweepStorage) URL(name string) string {
	return "/uploads/" + name
}

// sweepArticleRepo chỉ cần ImageURLInUse, phần còn lại không được gọi.
type sweepArticleRepo struct {
	article.Repository

	inUse map[string]bool
}

func (r *sweepArticleRepo) ImageURLInUse(_ context.Context, url string) (bool, error) {
	return r.inUse[url], nil
}

func runSweep(t *testing.T, files map[string]time.Time, inUse map[string]bool) map[string]time.Time {
	t.Helper()

	store := &sweepStorage{files: files}
	h := NewSweepOrphansHandler(store, &sweepArticleRepo{inUse: inUse})

	task := asynq.NewTask(queue.TypeSweepOrphanUploads, nil)
	require.NoError(t, h.ProcessTask(context.Background(), task))
	return store.files
}

func TestSweepDeletesUnreferencedUploads(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	files := map[string]time.Time{
		"orphan.png":               old,
		"orphan_large.jpg":         old,
		"orphan_medium.jpg":        old,
		"orphan_thumbnail.jpg":     old,
		"referenced.jpg":           old,
		"referenced_large.jpg":     old,
		"referenced_thumbnail.jpg": old,
	}
	inUse := map[string]bool{"/uploads/referenced.jpg": true}

	remaining := runSweep(t, files, inUse)

	assert.NotContains(t, remaining, "orphan.png")
	assert.NotContains(t, remaining, "orphan_large.jpg")
	assert.NotContains(t, remaining, "orphan_medium.jpg")
	assert.NotContains(t, remaining, "orphan_thumbnail.jpg")

	assert.Contains(t, remaining, "referenced.jpg")
	assert.Contains(t, remaining, "referenced_large.jpg")
	assert.Contains(t, remaining, "referenced_thumbnail.jpg")
}

func TestSweepKeepsRecentUploads(t *testing.T) {
	files := map[string]time.Time{
		"fresh.png": time.Now().Add(-time.Hour),
	}

	remaining := runSweep(t, files, nil)
	assert.Contains(t, remaining, "fresh.png")
}

func TestSweepDeletesVariantsWithoutOrigin(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	files := map[string]time.Time{
		"gone_large.jpg":     old,
		"gone_thumbnail.jpg": old,
	}

	remaining := runSweep(t, files, nil)
	assert.Empty(t, remaining)
}

func TestSweepIgnoresVariantsInFirstPass(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	// Origin được tham chiếu: variant không bao giờ bị check ImageURLInUse
	files := map[string]time.Time{
		"logo.png":       old,
		"logo_large.jpg": old,
	}
	inUse := map[string]bool{"/uploads/logo.png": true}

	remaining := runSweep(t, files, inUse)
	assert.Len(t, remaining, 2)
}
