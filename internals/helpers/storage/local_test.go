package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "photo.jpg", sanitizeFilename("photo.jpg"))
	assert.Equal(t, "my-photo-1.jpg", sanitizeFilename("my photo (1).jpg"))
	assert.Equal(t, "file", sanitizeFilename("???"))
	// Path components never survive into the stored name.
	assert.Equal(t, "passwd", sanitizeFilename("../../etc/passwd"))
}

func TestBuildFilename(t *testing.T) {
	name := buildFilename("thumbnails", "cover image.png")
	assert.True(t, strings.HasSuffix(name, "-cover-image.png"), name)
	assert.False(t, strings.HasPrefix(name, "inline-"))

	inline := buildFilename("inline", "body.png")
	assert.True(t, strings.HasPrefix(inline, "inline-"), inline)
}

func TestLocalStorageUploadImage(t *testing.T) {
	dir := t.TempDir()
	s := &LocalStorage{Root: dir, BaseURL: "/uploads"}

	fh := multipartFileHeader(t, "thumbnail", "cover.jpg", "fake image bytes")

	url, err := s.UploadImage(context.Background(), "thumbnails", fh)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"), url)

	stored := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalStorageRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	s := &LocalStorage{Root: dir, BaseURL: "/uploads"}

	fh := multipartFileHeader(t, "thumbnail", "big.jpg", "x")
	fh.Size = maxUploadSize + 1

	_, err := s.UploadImage(context.Background(), "thumbnails", fh)
	assert.Error(t, err)
}
