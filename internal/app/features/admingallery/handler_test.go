package admingallery_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/byuhkorea/alumnihub/internal/app/features/admingallery"
	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	gallerystore "github.com/byuhkorea/alumnihub/internal/app/store/gallery"
	"github.com/byuhkorea/alumnihub/internal/testutil"
	"go.uber.org/zap"
)

// failingBlob refuses every operation, standing in for a bucket whose
// object is already gone or unreachable.
type failingBlob struct{}

func (failingBlob) Put(ctx context.Context, path string, r io.Reader, contentType string) (string, error) {
	return "", errors.New("blob unavailable")
}
func (failingBlob) URL(path string) string { return "/files/images/" + path }
func (failingBlob) Delete(ctx context.Context, pathOrURL string) error {
	return errors.New("blob unavailable")
}

func TestHandleDelete_BlobFailureStillRemovesRecord(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	img := fx.CreateGalleryImage(ctx, "reunion")

	h := admingallery.NewHandler(db, failingBlob{}, cache.New(),
		uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/admin/gallery/"+img.ID.Hex()+"/delete", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", img.ID.Hex())
	rec := httptest.NewRecorder()

	h.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/gallery" {
		t.Errorf("redirect: got %q", loc)
	}

	if _, err := gallerystore.New(db).Get(ctx, img.ID); err != gallerystore.ErrNotFound {
		t.Errorf("record still present after delete: err=%v", err)
	}
}
