package upload

import (
	"context"
	"errors"
)

var (
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrEmptyFile          = errors.New("uploaded file is empty")
)

// allowedTypes là MIME allow-list. Quyết định chặn dựa trên declared
// content type; 400 cho mọi loại khác.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

func IsAllowedType(contentType string) bool {
	return allowedTypes[contentType]
}

type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

// Service là business logic contract cho upload domain.
type Service interface {
	Upload(ctx context.Context, originalName, contentType string, data []byte) (*UploadResponse, error)
}
