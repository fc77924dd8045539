package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores blobs under a directory on disk and serves them through
// the static file server at a URL prefix. Used in development and
// single-host deployments.
type Local struct {
	root      string // e.g. ./uploads/media
	urlPrefix string // e.g. /media
}

// NewLocal creates a Local store rooted at dir, served at urlPrefix.
func NewLocal(dir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Local{
		root:      dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// Put writes the blob to disk and returns its serving URL.
func (l *Local) Put(ctx context.Context, path string, r io.Reader, contentType string) (string, error) {
	full := filepath.Join(l.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", err
	}
	return l.URL(path), nil
}

// URL returns the serving URL for a stored path.
func (l *Local) URL(path string) string {
	return l.urlPrefix + "/" + strings.TrimPrefix(path, "/")
}

// Delete removes a blob by storage path or serving URL.
func (l *Local) Delete(ctx context.Context, pathOrURL string) error {
	path := strings.TrimPrefix(pathOrURL, l.urlPrefix+"/")
	full := filepath.Join(l.root, filepath.FromSlash(path))
	err := os.Remove(full)
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}
