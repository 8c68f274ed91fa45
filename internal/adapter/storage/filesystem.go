package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
)

// FileSystem stores media as flat files under root and serves them back
// under publicBaseURL.
type FileSystem struct {
	root          string
	publicBaseURL string
	newKey        func(name string) string
}

// NewFileSystem creates the root directory if needed.
func NewFileSystem(root, publicBaseURL string) (*FileSystem, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &FileSystem{root: root, publicBaseURL: publicBaseURL, newKey: objectKey}, nil
}

// Store writes r to a new file. A partially written file is removed on failure.
func (f *FileSystem) Store(ctx context.Context, name, _ string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := f.newKey(name)
	dest := filepath.Join(f.root, key)

	file, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: create %s: %w", key, err)
	}
	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(dest)
		return "", fmt.Errorf("storage: write %s: %w", key, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("storage: close %s: %w", key, err)
	}

	return joinURL(f.publicBaseURL, key), nil
}

// Remove deletes the file behind a URL returned by Store.
func (f *FileSystem) Remove(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := keyFromURL(url)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(f.root, key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: remove %s: %w", key, err)
	}
	return nil
}

// Handler serves stored files. Directory listings are disabled.
func (f *FileSystem) Handler() http.Handler {
	files := http.FileServer(http.Dir(f.root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path == "/" || r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
