package upload_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/byuhkorea/alumnihub/internal/app/system/upload"
)

// fakeBlob records Put calls in memory.
type fakeBlob struct {
	puts   map[string][]byte
	failed bool
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{puts: map[string][]byte{}}
}

func (f *fakeBlob) Put(ctx context.Context, path string, r io.Reader, contentType string) (string, error) {
	if f.failed {
		return "", errors.New("backend down")
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	f.puts[path] = buf.Bytes()
	return "https://cdn.test/" + path, nil
}

func (f *fakeBlob) URL(path string) string { return "https://cdn.test/" + path }

func (f *fakeBlob) Delete(ctx context.Context, pathOrURL string) error { return nil }

func fileHeader(contentType string, size int64) (multipart.File, *multipart.FileHeader) {
	h := &multipart.FileHeader{
		Filename: "photo.bin",
		Size:     size,
		Header:   textproto.MIMEHeader{},
	}
	h.Header.Set("Content-Type", contentType)
	return nopFile{strings.NewReader(strings.Repeat("x", 16))}, h
}

type nopFile struct{ *strings.Reader }

func (nopFile) Close() error { return nil }

func TestImage_StoresUnderCategoryPath(t *testing.T) {
	blob := newFakeBlob()
	file, header := fileHeader("image/jpeg", 1024)

	res, err := upload.Image(context.Background(), blob, "profile", file, header, upload.MaxProfileImage)
	if err != nil {
		t.Fatalf("Image() error: %v", err)
	}
	if !strings.HasPrefix(res.StoragePath, "profile/") || !strings.HasSuffix(res.StoragePath, ".jpg") {
		t.Errorf("storage path: got %q", res.StoragePath)
	}
	if res.URL != "https://cdn.test/"+res.StoragePath {
		t.Errorf("url: got %q", res.URL)
	}
	if _, ok := blob.puts[res.StoragePath]; !ok {
		t.Error("blob store did not receive the upload")
	}
}

func TestImage_Extensions(t *testing.T) {
	tests := []struct {
		contentType string
		ext         string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/webp", ".webp"},
	}
	for _, tt := range tests {
		blob := newFakeBlob()
		file, header := fileHeader(tt.contentType, 100)
		res, err := upload.Image(context.Background(), blob, "gallery", file, header, upload.MaxGalleryImage)
		if err != nil {
			t.Fatalf("Image(%s) error: %v", tt.contentType, err)
		}
		if !strings.HasSuffix(res.StoragePath, tt.ext) {
			t.Errorf("Image(%s) path %q, want suffix %q", tt.contentType, res.StoragePath, tt.ext)
		}
	}
}

func TestImage_RejectsDisallowedType(t *testing.T) {
	blob := newFakeBlob()
	file, header := fileHeader("image/gif", 100)

	_, err := upload.Image(context.Background(), blob, "gallery", file, header, upload.MaxGalleryImage)
	v, ok := upload.IsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if v.MessageKey != "error.imageType" {
		t.Errorf("message key: got %q", v.MessageKey)
	}
	if len(blob.puts) != 0 {
		t.Error("rejected upload still reached the blob store")
	}
}

func TestImage_RejectsOversize(t *testing.T) {
	blob := newFakeBlob()
	file, header := fileHeader("image/png", upload.MaxProfileImage+1)

	_, err := upload.Image(context.Background(), blob, "profile", file, header, upload.MaxProfileImage)
	v, ok := upload.IsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if v.MessageKey != "error.imageSize" {
		t.Errorf("message key: got %q", v.MessageKey)
	}
}

func TestImage_BackendFailureIsNotValidation(t *testing.T) {
	blob := newFakeBlob()
	blob.failed = true
	file, header := fileHeader("image/jpeg", 100)

	_, err := upload.Image(context.Background(), blob, "news", file, header, upload.MaxNewsImage)
	if err == nil {
		t.Fatal("expected error from failing backend")
	}
	if _, ok := upload.IsValidation(err); ok {
		t.Error("backend failure classified as validation error")
	}
}

func TestImage_UniquePaths(t *testing.T) {
	blob := newFakeBlob()
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		file, header := fileHeader("image/jpeg", 100)
		res, err := upload.Image(context.Background(), blob, "events", file, header, upload.MaxEventImage)
		if err != nil {
			t.Fatalf("Image() error: %v", err)
		}
		if seen[res.StoragePath] {
			t.Fatalf("duplicate storage path %q", res.StoragePath)
		}
		seen[res.StoragePath] = true
	}
}
