package admingallery

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	gallerystore "github.com/byuhkorea/alumnihub/internal/app/store/gallery"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/blobstore"
	"github.com/byuhkorea/alumnihub/internal/app/system/formutil"
	"github.com/byuhkorea/alumnihub/internal/app/system/i18n"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/upload"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler manages gallery images from the admin console.
type Handler struct {
	Gallery *gallerystore.Store
	Blob    blobstore.Store
	Cache   *cache.Cache
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, blob blobstore.Store, c *cache.Cache, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Gallery: gallerystore.New(db),
		Blob:    blob,
		Cache:   c,
		ErrLog:  errLog,
		Log:     logger,
	}
}

type galleryPageData struct {
	formutil.Base
	Images   []models.GalleryImage
	Alt      string
	Category string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/gallery                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "", "", "")
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, alt, category, errMsg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	images, err := h.Gallery.List(ctx, "")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin gallery: list failed", err, "/admin")
		return
	}

	data := galleryPageData{Images: images, Alt: alt, Category: category}
	formutil.SetBase(&data.Base, r, "Manage Gallery", "/admin")
	data.Title = data.L.T("admin.gallery")
	if errMsg != "" {
		data.SetError(errMsg)
	}

	templates.Render(w, r, "admin_gallery", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/gallery/upload                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromRequest(r)

	if err := r.ParseMultipartForm(upload.MaxGalleryImage + 64<<10); err != nil {
		h.renderList(w, r, "", "", loc.T("error.generic"))
		return
	}

	alt := strings.TrimSpace(r.FormValue("alt"))
	category := strings.TrimSpace(r.FormValue("category"))

	file, header, err := r.FormFile("image")
	if err != nil {
		h.renderList(w, r, alt, category, loc.T("error.imageRequired"))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	img, err := upload.Image(ctx, h.Blob, "gallery", file, header, upload.MaxGalleryImage)
	if err != nil {
		if v, ok := upload.IsValidation(err); ok {
			h.renderList(w, r, alt, category, loc.T(v.MessageKey))
			return
		}
		h.Log.Error("admin gallery: upload failed", zap.Error(err))
		h.renderList(w, r, alt, category, loc.T("error.generic"))
		return
	}

	uploadedBy := ""
	if u, ok := auth.CurrentUser(r); ok {
		uploadedBy = u.UID
	}

	_, err = h.Gallery.Create(ctx, models.GalleryImage{
		Src:         img.URL,
		StoragePath: img.StoragePath,
		Alt:         alt,
		Category:    category,
		UploadedBy:  uploadedBy,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin gallery: create failed", err, "/admin/gallery")
		return
	}
	h.Cache.Invalidate(cache.KeyGallery)

	http.Redirect(w, r, "/admin/gallery", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/gallery/{id}/delete                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleDelete removes an image in two steps: blob first (best
// effort), then the record unconditionally. A blob failure is logged
// and swallowed so a missing object can never strand the record.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "/admin/gallery")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	img, err := h.Gallery.Get(ctx, id)
	if err != nil {
		if err == gallerystore.ErrNotFound {
			h.ErrLog.LogNotFound(w, r, "/admin/gallery")
			return
		}
		h.ErrLog.LogServerError(w, r, "admin gallery: get failed", err, "/admin/gallery")
		return
	}

	// Records imported before blob keys were tracked only carry the
	// serving URL; the store resolves either form.
	ref := img.StoragePath
	if ref == "" {
		ref = img.Src
	}
	if err := h.Blob.Delete(ctx, ref); err != nil {
		h.Log.Warn("admin gallery: blob delete failed", zap.String("ref", ref), zap.Error(err))
	}

	if err := h.Gallery.Delete(ctx, id); err != nil && err != gallerystore.ErrNotFound {
		h.ErrLog.LogServerError(w, r, "admin gallery: delete failed", err, "/admin/gallery")
		return
	}
	h.Cache.Invalidate(cache.KeyGallery)

	http.Redirect(w, r, "/admin/gallery", http.StatusSeeOther)
}
