package home

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	eventstore "github.com/byuhkorea/alumnihub/internal/app/store/events"
	newsstore "github.com/byuhkorea/alumnihub/internal/app/store/news"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Events *eventstore.Store
	News   *newsstore.Store
	Cache  *cache.Cache
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, c *cache.Cache, logger *zap.Logger) *Handler {
	return &Handler{
		Events: eventstore.New(db),
		News:   newsstore.New(db),
		Cache:  c,
		Log:    logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	events, err := cache.GetOrLoad(ctx, h.Cache, cache.KeyEvents, cache.TTLFrequent,
		func(ctx context.Context) ([]models.Event, error) { return h.Events.List(ctx) })
	if err != nil {
		h.Log.Error("home: load events failed", zap.Error(err))
		events = nil
	}

	news, err := cache.GetOrLoad(ctx, h.Cache, cache.KeyNews, cache.TTLFrequent,
		func(ctx context.Context) ([]models.NewsItem, error) { return h.News.List(ctx) })
	if err != nil {
		h.Log.Error("home: load news failed", zap.Error(err))
		news = nil
	}

	data := struct {
		viewdata.BaseVM
		UpcomingEvents []models.Event
		LatestNews     []models.NewsItem
		Contact        ContactInfo
	}{
		BaseVM:         viewdata.NewBaseVM(r, "Home", "/"),
		UpcomingEvents: upcoming(events, 3),
		LatestNews:     latest(news, 3),
		Contact:        ChapterContact(),
	}
	data.Title = data.L.T("nav.home")

	templates.Render(w, r, "home", data)
}

// SNSLink is one social channel shown in the contact section.
type SNSLink struct {
	Platform string
	URL      string
}

// ContactInfo is the chapter's public contact block at the bottom of
// the landing page.
type ContactInfo struct {
	Email string
	SNS   []SNSLink
}

// ChapterContact returns the chapter's contact details.
func ChapterContact() ContactInfo {
	return ContactInfo{
		Email: "korea@byuhalumni.org",
		SNS: []SNSLink{
			{Platform: "Instagram", URL: "https://instagram.com/byuhkorea"},
			// TODO: swap in the KakaoTalk channel URL once the chapter opens one.
			{Platform: "KakaoTalk", URL: "#"},
		},
	}
}

// upcoming picks the n soonest events at or after today, soonest first.
// The store returns newest-first, so re-sort ascending after filtering.
func upcoming(events []models.Event, n int) []models.Event {
	today := time.Now().Truncate(24 * time.Hour)

	var out []models.Event
	for _, e := range events {
		if !e.Date.Before(today) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func latest(news []models.NewsItem, n int) []models.NewsItem {
	if len(news) > n {
		return news[:n]
	}
	return news
}
