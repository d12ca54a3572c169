package storage

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// FileInfo mô tả một file đang nằm trong storage.
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Storage trừu tượng hóa nơi chứa file upload (local filesystem hoặc MinIO).
// Mọi driver đều giữ policy idempotent theo tên: Save với tên đã tồn tại
// không ghi đè mà trả về URL của file cũ.
type Storage interface {
	// Save ghi file nếu chưa tồn tại.
	// Returns: (public URL, created, error); created=false nghĩa là
	// file cùng tên đã có sẵn và được tái sử dụng.
	Save(ctx context.Context, name string, data []byte, contentType string) (string, bool, error)

	// Read đọc toàn bộ nội dung file.
	Read(ctx context.Context, name string) ([]byte, error)

	// Exists kiểm tra file có trong storage không.
	Exists(ctx context.Context, name string) (bool, error)

	// Delete xóa file; xóa file không tồn tại không phải lỗi.
	Delete(ctx context.Context, name string) error

	// List liệt kê toàn bộ files (dùng cho orphan sweep).
	List(ctx context.Context) ([]FileInfo, error)

	// URL trả về public URL cho tên file.
	URL(name string) string
}

var fileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFileName chuẩn hóa tên file client gửi lên thành "base.ext".
// base là phần trước dấu chấm đầu tiên sau khi lọc ký tự lạ (fallback
// "image"), ext là extension gốc lowercase (fallback "jpg").
// Tên ra deterministic: cùng input luôn cho cùng output.
func SanitizeFileName(original string) string {
	cleaned := fileNameChars.ReplaceAllString(original, "")

	base := cleaned
	if i := strings.Index(cleaned, "."); i >= 0 {
		base = cleaned[:i]
	}
	if base == "" {
		base = "image"
	}

	ext := ""
	if i := strings.LastIndex(cleaned, "."); i >= 0 && i+1 < len(cleaned) {
		ext = strings.ToLower(cleaned[i+1:])
	}
	if ext == "" {
		ext = "jpg"
	}

	return base + "." + ext
}
