// Package storage persists uploaded images. Records in the store keep only
// the object name; the backing bytes live behind ImageStore so the service
// can run against local disk or a MinIO bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageStore stores and serves the uploaded image blobs.
type ImageStore interface {
	// Save writes the object under name, creating the storage area if needed.
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	// Open returns a reader over the stored object.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Delete removes the object. A missing object is not an error.
	Delete(ctx context.Context, name string) error
	// Exists reports whether the object is present.
	Exists(ctx context.Context, name string) (bool, error)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// ObjectName builds a collision-resistant name for an upload: millisecond
// timestamp prefix plus the sanitized original filename.
func ObjectName(originalName string) string {
	base := unsafeChars.ReplaceAllString(filepath.Base(originalName), "_")
	if base == "" || base == "." {
		base = uuid.New().String()
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}

// ThumbName is the object name for the thumbnail derived from name.
func ThumbName(name string) string {
	return "thumbs/" + strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
}

// ContentTypeFor maps a file extension to a MIME type.
func ContentTypeFor(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
