package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/upload"
	"newsroom-backend/internal/shared/response"
	"newsroom-backend/pkg/logger"
)

// maxUploadSize giới hạn body đọc vào memory (5MB, khớp ImageProcessor).
const maxUploadSize = 5 * 1024 * 1024

// UploadHandler xử lý POST /api/upload.
type UploadHandler struct {
	service upload.Service
}

func NewUploadHandler(service upload.Service) *UploadHandler {
	return &UploadHandler{service: service}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.BadRequest(c, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", err)
		response.InternalServerError(c, "Internal server error")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		logger.Error("Failed to read uploaded file", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	result, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

func (h *UploadHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, upload.ErrFileTypeNotAllowed):
		response.BadRequest(c, "File type not allowed (jpeg, png, webp, gif only)")
	case errors.Is(err, upload.ErrEmptyFile):
		response.BadRequest(c, "Uploaded file is empty")
	default:
		logger.Error("Upload handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
