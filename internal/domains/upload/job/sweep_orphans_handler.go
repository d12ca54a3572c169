package job

import (
	"context"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"newsroom-backend/internal/domains/article"
	"newsroom-backend/internal/infrastructure/storage"
)

// orphanGracePeriod: file mới upload chưa chắc đã được gắn vào bài viết,
// chờ 24h trước khi coi là orphan.
const orphanGracePeriod = 24 * time.Hour

var variantSuffixes = []string{"_large.jpg", "_medium.jpg", "_thumbnail.jpg"}

// SweepOrphansHandler dọn uploads không còn bài viết nào tham chiếu.
type SweepOrphansHandler struct {
	storage     storage.Storage
	articleRepo article.Repository
}

func NewSweepOrphansHandler(store storage.Storage, articleRepo article.Repository) *SweepOrphansHandler {
	return &SweepOrphansHandler{storage: store, articleRepo: articleRepo}
}

func (h *SweepOrphansHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	files, err := h.storage.List(ctx)
	if err != nil {
		return err
	}

	remaining := make(map[string]bool, len(files))
	for _, f := range files {
		remaining[f.Name] = true
	}

	removed := 0

	// Pass 1: file gốc không còn được tham chiếu
	for _, f := range files {
		if isVariant(f.Name) {
			continue
		}
		if time.Since(f.ModTime) < orphanGracePeriod {
			continue
		}

		inUse, err := h.articleRepo.ImageURLInUse(ctx, h.storage.URL(f.Name))
		if err != nil {
			return err
		}
		if inUse {
			continue
		}

		if err := h.storage.Delete(ctx, f.Name); err != nil {
			log.Error().Err(err).Str("file", f.Name).Msg("Failed to delete orphan upload")
			continue
		}
		delete(remaining, f.Name)
		removed++
	}

	// Pass 2: variant mà file gốc đã bị dọn
	for _, f := range files {
		base, ok := variantBase(f.Name)
		if !ok || !remaining[f.Name] {
			continue
		}
		if hasOrigin(remaining, base) {
			continue
		}

		if err := h.storage.Delete(ctx, f.Name); err != nil {
			log.Error().Err(err).Str("file", f.Name).Msg("Failed to delete orphan variant")
			continue
		}
		delete(remaining, f.Name)
		removed++
	}

	log.Info().
		Int("scanned", len(files)).
		Int("removed", removed).
		Msg("Orphan upload sweep finished")

	return nil
}

func isVariant(name string) bool {
	_, ok := variantBase(name)
	return ok
}

// variantBase tách base từ tên variant: "logo_large.jpg" → ("logo", true).
func variantBase(name string) (string, bool) {
	for _, suffix := range variantSuffixes {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix), true
		}
	}
	return "", false
}

// hasOrigin check còn file gốc "base.<ext>" nào trong storage không.
func hasOrigin(remaining map[string]bool, base string) bool {
	for name := range remaining {
		if isVariant(name) {
			continue
		}
		if strings.HasPrefix(name, base+".") {
			return true
		}
	}
	return false
}
