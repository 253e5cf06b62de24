package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"
)

/*
BlobService is the upload facade used by controllers. Both backends return a
publicly resolvable URL: the local driver a path under /uploads served by the
app itself, the OSS driver an absolute bucket URL.
*/
type BlobService interface {
	// UploadImage stores the file under the given slot ("thumbnails",
	// "inline") and returns its public URL.
	UploadImage(ctx context.Context, slot string, fh *multipart.FileHeader) (string, error)
}

// NewBlobServiceFromEnv selects the backend via STORAGE_DRIVER (local | oss).
func NewBlobServiceFromEnv() (BlobService, error) {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER")))
	switch driver {
	case "", "local":
		return NewLocalStorageFromEnv()
	case "oss":
		return NewOSSStorageFromEnv("uploads")
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (want local or oss)", driver)
	}
}
