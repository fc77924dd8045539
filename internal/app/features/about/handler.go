package about

import (
	"context"
	"net/http"

	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	leadershipstore "github.com/byuhkorea/alumnihub/internal/app/store/leadership"
	userstore "github.com/byuhkorea/alumnihub/internal/app/store/users"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the About page with the leadership roster.
type Handler struct {
	Leadership *leadershipstore.Store
	Users      *userstore.Store
	Cache      *cache.Cache
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, c *cache.Cache, logger *zap.Logger) *Handler {
	return &Handler{
		Leadership: leadershipstore.New(db),
		Users:      userstore.New(db),
		Cache:      c,
		Log:        logger,
	}
}

// Leader is a leadership entry joined with its member profile.
type Leader struct {
	Title       string
	Description string
	Name        string
	PhotoURL    string
	Company     string
	Position    string
}

// ServeAbout renders the chapter introduction and leadership roster.
// GET /about
func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	leaders, err := cache.GetOrLoad(ctx, h.Cache, cache.KeyLeadership, cache.TTLModerate, h.loadLeaders)
	if err != nil {
		h.Log.Error("about: load leadership failed", zap.Error(err))
		leaders = nil
	}

	data := struct {
		viewdata.BaseVM
		Leaders []Leader
	}{
		BaseVM:  viewdata.NewBaseVM(r, "About", "/"),
		Leaders: leaders,
	}
	data.Title = data.L.T("nav.about")

	templates.Render(w, r, "about", data)
}

// loadLeaders joins leadership entries to member profiles in display
// order. An entry whose uid no longer resolves is skipped, not an
// error: the roster should survive a deleted profile.
func (h *Handler) loadLeaders(ctx context.Context) ([]Leader, error) {
	entries, err := h.Leadership.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []Leader
	for _, e := range entries {
		p, err := h.Users.Get(ctx, e.UID)
		if err != nil {
			if err == userstore.ErrNotFound {
				continue
			}
			return nil, err
		}
		out = append(out, Leader{
			Title:       e.Title,
			Description: e.Description,
			Name:        p.Name,
			PhotoURL:    p.ProfileImageURL,
			Company:     p.Company,
			Position:    p.Position,
		})
	}
	return out, nil
}
