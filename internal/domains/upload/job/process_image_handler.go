package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"newsroom-backend/internal/infrastructure/queue"
	"newsroom-backend/internal/infrastructure/storage"
)

// ProcessImageHandler tạo variants (large/medium/thumbnail) cho ảnh
// vừa upload.
type ProcessImageHandler struct {
	storage   storage.Storage
	processor *storage.ImageProcessor
}

func NewProcessImageHandler(store storage.Storage, processor *storage.ImageProcessor) *ProcessImageHandler {
	return &ProcessImageHandler{storage: store, processor: processor}
}

// ProcessTask xử lý background job resize ảnh.
func (h *ProcessImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload queue.ProcessUploadImagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ProcessImage payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("file", payload.FileName).
		Msg("Processing upload image variants")

	data, err := h.storage.Read(ctx, payload.FileName)
	if err != nil {
		return fmt.Errorf("read upload %s: %w", payload.FileName, err)
	}

	variants, err := h.processor.ProcessImage(data)
	if err != nil {
		// Format không decode được (vd webp): bỏ qua, không retry
		log.Warn().
			Err(err).
			Str("file", payload.FileName).
			Msg("Skipping variants for undecodable image")
		return nil
	}

	for variant, variantData := range variants {
		name := storage.VariantName(payload.FileName, variant)
		if _, _, err := h.storage.Save(ctx, name, variantData, "image/jpeg"); err != nil {
			return fmt.Errorf("save variant %s: %w", name, err)
		}
	}

	log.Info().
		Str("file", payload.FileName).
		Int("variants", len(variants)).
		Msg("Upload image processed successfully")

	return nil
}
