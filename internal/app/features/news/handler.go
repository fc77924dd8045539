package news

import (
	"context"
	"html/template"
	"net/http"

	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	newsstore "github.com/byuhkorea/alumnihub/internal/app/store/news"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public news pages.
type Handler struct {
	News   *newsstore.Store
	Cache  *cache.Cache
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, c *cache.Cache, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		News:   newsstore.New(db),
		Cache:  c,
		ErrLog: errLog,
		Log:    logger,
	}
}

// GET /news
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	items, err := cache.GetOrLoad(ctx, h.Cache, cache.KeyNews, cache.TTLFrequent,
		func(ctx context.Context) ([]models.NewsItem, error) { return h.News.List(ctx) })
	if err != nil {
		h.ErrLog.LogServerError(w, r, "news: list failed", err, "/")
		return
	}

	data := struct {
		viewdata.BaseVM
		Items []models.NewsItem
	}{
		BaseVM: viewdata.NewBaseVM(r, "News", "/"),
		Items:  items,
	}
	data.Title = data.L.T("nav.news")

	templates.Render(w, r, "news_list", data)
}

// GET /news/{id}
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "/news")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.News.Get(ctx, id)
	if err != nil {
		if err == newsstore.ErrNotFound {
			h.ErrLog.LogNotFound(w, r, "/news")
			return
		}
		h.ErrLog.LogServerError(w, r, "news: get failed", err, "/news")
		return
	}

	data := struct {
		viewdata.BaseVM
		Item *models.NewsItem
		// Content is sanitized on write, so rendering it unescaped here
		// is safe.
		Content template.HTML
	}{
		BaseVM:  viewdata.NewBaseVM(r, item.Title, "/news"),
		Item:    item,
		Content: template.HTML(item.Content),
	}

	templates.Render(w, r, "news_detail", data)
}
