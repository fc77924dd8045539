package profile

import (
	"context"
	"net/http"

	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	userstore "github.com/byuhkorea/alumnihub/internal/app/store/users"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/blobstore"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the member's own profile pages: view, edit, and the
// one-time setup flow for a fresh sign-in.
type Handler struct {
	Users  *userstore.Store
	Blob   blobstore.Store
	Cache  *cache.Cache
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, blob blobstore.Store, c *cache.Cache, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Blob:   blob,
		Cache:  c,
		ErrLog: errLog,
		Log:    logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /profile – own profile                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Users.Get(ctx, u.UID)
	if err != nil {
		if err == userstore.ErrNotFound {
			http.Redirect(w, r, "/profile/setup", http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "profile: get failed", err, "/")
		return
	}

	data := struct {
		viewdata.BaseVM
		Profile *models.UserProfile
	}{
		BaseVM:  viewdata.NewBaseVM(r, "Profile", "/"),
		Profile: p,
	}
	data.Title = data.L.T("profile.title")

	templates.Render(w, r, "profile_view", data)
}
