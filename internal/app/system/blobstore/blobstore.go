// Package blobstore abstracts image blob storage behind a small
// Put/Delete/URL interface with a local-filesystem backend for dev and
// a Google Cloud Storage backend for production.
package blobstore

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Delete when the blob does not exist.
// Callers that treat blob deletion as best-effort can ignore it.
var ErrNotFound = errors.New("blobstore: object not found")

// Store is the blob storage boundary: Put transfers bytes to a path,
// URL derives the public serving URL for a stored path, and Delete
// removes a blob by storage path or full URL.
type Store interface {
	Put(ctx context.Context, path string, r io.Reader, contentType string) (url string, err error)
	URL(path string) string
	Delete(ctx context.Context, pathOrURL string) error
}
