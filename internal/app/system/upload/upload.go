// Package upload is the media upload service: it validates image
// uploads (MIME allow-list and a per-use-case size ceiling) before any
// bytes leave the process, then hands them to the blob store under a
// category-namespaced unique name.
package upload

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/byuhkorea/alumnihub/internal/app/system/blobstore"
	"github.com/google/uuid"
)

// Per-use-case size ceilings.
const (
	MaxProfileImage = 2 << 20  // 2 MiB
	MaxEventImage   = 5 << 20  // 5 MiB
	MaxNewsImage    = 5 << 20  // 5 MiB
	MaxGalleryImage = 10 << 20 // 10 MiB
)

// allowedTypes maps accepted MIME types to their file extension.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ValidationError is a user-input failure, rendered inline on the form
// rather than propagated as a fatal error. MessageKey is an i18n
// catalog key.
type ValidationError struct {
	MessageKey string
}

func (e *ValidationError) Error() string { return e.MessageKey }

// IsValidation returns the ValidationError when err is one, so callers
// can surface MessageKey to the user.
func IsValidation(err error) (*ValidationError, bool) {
	v, ok := err.(*ValidationError)
	return v, ok
}

// Result is the stable reference to an uploaded image.
type Result struct {
	URL         string
	StoragePath string
}

// Image validates and transfers one image. The MIME and size checks
// run before any call to the blob store; a failure there is a
// ValidationError. The stored path is "<category>/<uuid><ext>".
func Image(ctx context.Context, store blobstore.Store, category string, file multipart.File, header *multipart.FileHeader, maxBytes int64) (Result, error) {
	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedTypes[contentType]
	if !ok {
		return Result{}, &ValidationError{MessageKey: "error.imageType"}
	}
	if header.Size > maxBytes {
		return Result{}, &ValidationError{MessageKey: "error.imageSize"}
	}

	path := fmt.Sprintf("%s/%s%s", category, uuid.NewString(), ext)
	url, err := store.Put(ctx, path, file, contentType)
	if err != nil {
		return Result{}, fmt.Errorf("image upload: %w", err)
	}
	return Result{URL: url, StoragePath: path}, nil
}
