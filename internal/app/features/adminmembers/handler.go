package adminmembers

import (
	"context"
	"net/http"

	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	userstore "github.com/byuhkorea/alumnihub/internal/app/store/users"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/formutil"
	"github.com/byuhkorea/alumnihub/internal/app/system/i18n"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler lets admins review every member and assign roles.
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

type membersPageData struct {
	formutil.Base
	Members    []models.UserProfile
	Roles      []string
	CurrentUID string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/members                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "")
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, errMsg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Users.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin members: list failed", err, "/admin")
		return
	}

	data := membersPageData{
		Members: members,
		Roles:   []string{models.RoleMember, models.RoleManager, models.RoleAdmin},
	}
	if u, ok := auth.CurrentUser(r); ok {
		data.CurrentUID = u.UID
	}
	formutil.SetBase(&data.Base, r, "Manage Members", "/admin")
	data.Title = data.L.T("admin.members")
	if errMsg != "" {
		data.SetError(errMsg)
	}

	templates.Render(w, r, "admin_members", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/members/{uid}/role                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleRole(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	if err := r.ParseForm(); err != nil {
		h.renderList(w, r, i18n.FromRequest(r).T("error.generic"))
		return
	}
	role := r.FormValue("role")

	// Admins cannot demote themselves; that leaves the chapter with no
	// way back in.
	if u, ok := auth.CurrentUser(r); ok && u.UID == uid {
		h.renderList(w, r, i18n.FromRequest(r).T("admin.ownRole"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Users.UpdateRole(ctx, uid, role); err != nil {
		switch err {
		case userstore.ErrNotFound:
			h.ErrLog.LogNotFound(w, r, "/admin/members")
		case userstore.ErrBadRole:
			h.ErrLog.LogBadRequest(w, r, "admin members: bad role value", err, "error.generic", "/admin/members")
		default:
			h.ErrLog.LogServerError(w, r, "admin members: role change failed", err, "/admin/members")
		}
		return
	}
	h.Cache.Invalidate(cache.KeyDirectory, cache.KeyLeadership)

	h.Log.Info("member role changed",
		zap.String("uid", uid),
		zap.String("role", role))

	http.Redirect(w, r, "/admin/members", http.StatusSeeOther)
}
