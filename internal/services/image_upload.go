package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageUploadResult carries the stored file's public location.
type ImageUploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadDir returns the directory uploaded images are written to. Served by
// the router under /static/uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("web", "static", "uploads")
}

// StoreImage writes an uploaded image to the upload directory under a random
// name and returns its public URL.
func StoreImage(file multipart.File, header *multipart.FileHeader) (*ImageUploadResult, error) {
	dir := UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		switch header.Header.Get("Content-Type") {
		case "image/jpeg":
			ext = ".jpg"
		case "image/png":
			ext = ".png"
		case "image/gif":
			ext = ".gif"
		case "image/webp":
			ext = ".webp"
		default:
			ext = ".jpg"
		}
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return nil, fmt.Errorf("failed to write upload file: %w", err)
	}

	return &ImageUploadResult{
		URL:      "/static/uploads/" + name,
		Filename: name,
	}, nil
}
