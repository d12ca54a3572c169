package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"newsroom-backend/internal/domains/upload"
	"newsroom-backend/internal/infrastructure/queue"
	"newsroom-backend/internal/infrastructure/storage"
)

type uploadService struct {
	storage storage.Storage
	queue   *queue.Client
}

func NewUploadService(store storage.Storage, queueClient *queue.Client) upload.Service {
	return &uploadService{storage: store, queue: queueClient}
}

func (s *uploadService) Upload(ctx context.Context, originalName, contentType string, data []byte) (*upload.UploadResponse, error) {
	if len(data) == 0 {
		return nil, upload.ErrEmptyFile
	}
	if !upload.IsAllowedType(contentType) {
		return nil, upload.ErrFileTypeNotAllowed
	}

	// Tên file deterministic từ tên gốc; tên trùng → tái sử dụng
	// file cũ (Save idempotent theo tên)
	name := storage.SanitizeFileName(originalName)

	url, created, err := s.storage.Save(ctx, name, data, contentType)
	if err != nil {
		return nil, err
	}

	// Variants là best-effort: queue chết không làm upload thất bại
	if created && s.queue != nil {
		if err := s.queue.EnqueueProcessImage(ctx, name); err != nil {
			log.Error().Err(err).Str("file", name).Msg("Failed to enqueue image processing")
		}
	}

	return &upload.UploadResponse{URL: url, FileName: name}, nil
}
