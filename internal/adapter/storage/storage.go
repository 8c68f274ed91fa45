// Package storage persists uploaded media and returns the URL it is served from.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoriaviva-backend/internal/config"
)

// Storage stores a file and returns its public URL. Remove deletes a file by
// the URL Store returned; removing a missing file is not an error.
type Storage interface {
	Store(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	Remove(ctx context.Context, url string) error
}

// NewFromConfig creates the backend selected by cfg.Type.
func NewFromConfig(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case config.StorageFilesystem:
		if cfg.FSRoot == "" {
			return nil, fmt.Errorf("filesystem storage requires fs_root to be set")
		}
		return NewFileSystem(cfg.FSRoot, cfg.PublicBaseURL)
	case config.StorageS3:
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// objectKey names a stored object with a random ID, keeping a sanitized
// extension of the original file name.
func objectKey(name string) string {
	return uuid.NewString() + safeExt(name)
}

func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// keyFromURL recovers the flat object key from a URL built by Store.
func keyFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("storage: parse url %q: %w", rawURL, err)
	}
	key := path.Base(u.Path)
	if key == "." || key == "/" || key == ".." {
		return "", fmt.Errorf("storage: no object key in %q", rawURL)
	}
	return key, nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
