package gallery

import (
	"context"
	"net/http"

	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	gallerystore "github.com/byuhkorea/alumnihub/internal/app/store/gallery"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public photo gallery.
type Handler struct {
	Gallery *gallerystore.Store
	Cache   *cache.Cache
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, c *cache.Cache, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Gallery: gallerystore.New(db),
		Cache:   c,
		ErrLog:  errLog,
		Log:     logger,
	}
}

// GET /gallery?category=…
//
// The full image list is cached once; category filtering happens here
// so switching filters never refetches.
func (h *Handler) ServeGallery(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	images, err := cache.GetOrLoad(ctx, h.Cache, cache.KeyGallery, cache.TTLModerate,
		func(ctx context.Context) ([]models.GalleryImage, error) { return h.Gallery.List(ctx, "") })
	if err != nil {
		h.ErrLog.LogServerError(w, r, "gallery: list failed", err, "/")
		return
	}

	selected := query.Get(r, "category")

	seen := map[string]bool{}
	var categories []string
	var shown []models.GalleryImage
	for _, img := range images {
		if img.Category != "" && !seen[img.Category] {
			seen[img.Category] = true
			categories = append(categories, img.Category)
		}
		if selected == "" || img.Category == selected {
			shown = append(shown, img)
		}
	}

	data := struct {
		viewdata.BaseVM
		Images     []models.GalleryImage
		Categories []string
		Selected   string
	}{
		BaseVM:     viewdata.NewBaseVM(r, "Gallery", "/"),
		Images:     shown,
		Categories: categories,
		Selected:   selected,
	}
	data.Title = data.L.T("nav.gallery")

	templates.Render(w, r, "gallery", data)
}
