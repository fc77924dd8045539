package adminnews

import (
	"context"
	"net/http"

	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	newsstore "github.com/byuhkorea/alumnihub/internal/app/store/news"
	"github.com/byuhkorea/alumnihub/internal/app/system/blobstore"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler manages news items from the admin console.
type Handler struct {
	News   *newsstore.Store
	Blob   blobstore.Store
	Cache  *cache.Cache
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, blob blobstore.Store, c *cache.Cache, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		News:   newsstore.New(db),
		Blob:   blob,
		Cache:  c,
		ErrLog: errLog,
		Log:    logger,
	}
}

// GET /admin/news
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	items, err := h.News.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin news: list failed", err, "/admin")
		return
	}

	data := struct {
		viewdata.BaseVM
		Items []models.NewsItem
	}{
		BaseVM: viewdata.NewBaseVM(r, "Manage News", "/admin"),
		Items:  items,
	}
	data.Title = data.L.T("admin.news")

	templates.Render(w, r, "admin_news_list", data)
}
