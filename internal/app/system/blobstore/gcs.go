package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

// GCS stores blobs in a Google Cloud Storage bucket. Objects are
// publicly readable (bucket-level IAM) and served directly from
// storage.googleapis.com.
type GCS struct {
	client *storage.Client
	bucket string
	prefix string // optional key prefix, e.g. "media/"
}

// NewGCS creates a GCS store against the given bucket. Credentials are
// resolved by the client library (service account or ADC).
func NewGCS(ctx context.Context, bucket, prefix string) (*GCS, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket name is required")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create storage client: %w", err)
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &GCS{client: client, bucket: bucket, prefix: prefix}, nil
}

// Put uploads the blob and returns its public URL. The writer is
// closed before returning, which is when the upload actually commits.
func (g *GCS) Put(ctx context.Context, path string, r io.Reader, contentType string) (string, error) {
	obj := g.client.Bucket(g.bucket).Object(g.prefix + path)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("gcs write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs commit: %w", err)
	}
	return g.URL(path), nil
}

// URL returns the public URL for a stored path.
func (g *GCS) URL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s%s", g.bucket, g.prefix, path)
}

// Delete removes a blob by storage path or public URL.
func (g *GCS) Delete(ctx context.Context, pathOrURL string) error {
	key := pathOrURL
	if base := fmt.Sprintf("https://storage.googleapis.com/%s/", g.bucket); strings.HasPrefix(key, base) {
		key = strings.TrimPrefix(key, base)
	} else {
		key = g.prefix + key
	}

	err := g.client.Bucket(g.bucket).Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return ErrNotFound
	}
	return err
}

// Close releases the underlying client.
func (g *GCS) Close() error {
	return g.client.Close()
}
