package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const maxUploadSize = int64(5 * 1024 * 1024)

// LocalStorage writes uploads to a flat directory on disk, served statically
// by the app under BaseURL. Filenames are timestamped to avoid collisions;
// inline uploads additionally carry an "inline-" prefix.
type LocalStorage struct {
	Root    string
	BaseURL string
}

func NewLocalStorageFromEnv() (*LocalStorage, error) {
	root := strings.TrimSpace(os.Getenv("UPLOADS_DIR"))
	if root == "" {
		root = "./public/uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStorage{Root: root, BaseURL: "/uploads"}, nil
}

func (s *LocalStorage) UploadImage(ctx context.Context, slot string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file too large (max %d bytes)", maxUploadSize)
	}

	name := buildFilename(slot, fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Root, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.BaseURL + "/" + name, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	clean := unsafeFilenameChars.ReplaceAllString(filepath.Base(filename), "-")
	clean = strings.Trim(clean, "-.")
	if clean == "" {
		clean = "file"
	}
	return clean
}

func buildFilename(slot, original string) string {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(original))
	if slot == "inline" {
		name = "inline-" + name
	}
	return name
}
