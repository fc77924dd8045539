package directory

import (
	"context"
	"net/http"

	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	userstore "github.com/byuhkorea/alumnihub/internal/app/store/users"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// rosterTTL bounds staleness of the cached member list. Profiles
// change about as often as events and news, so it shares their window.
const rosterTTL = cache.TTLFrequent

// Handler serves the member directory for managers and admins. The
// full roster is cached; search filters the cached list in-process so
// typing refinements never hit the database.
type Handler struct {
	Users  *userstore.Store
	Cache  *cache.Cache
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, c *cache.Cache, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Cache:  c,
		ErrLog: errLog,
		Log:    logger,
	}
}

// GET /directory?q=…
func (h *Handler) ServeDirectory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	members, err := cache.GetOrLoad(ctx, h.Cache, cache.KeyDirectory, rosterTTL,
		func(ctx context.Context) ([]models.UserProfile, error) { return h.Users.ListAll(ctx) })
	if err != nil {
		h.ErrLog.LogServerError(w, r, "directory: list failed", err, "/")
		return
	}

	q := query.Get(r, "q")

	data := struct {
		viewdata.BaseVM
		Members []models.UserProfile
		Query   string
		Total   int
	}{
		BaseVM:  viewdata.NewBaseVM(r, "Directory", "/"),
		Members: userstore.Filter(members, q),
		Query:   q,
		Total:   len(members),
	}
	data.Title = data.L.T("directory.title")

	templates.Render(w, r, "directory", data)
}
