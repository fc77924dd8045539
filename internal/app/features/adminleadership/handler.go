package adminleadership

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	leadershipstore "github.com/byuhkorea/alumnihub/internal/app/store/leadership"
	userstore "github.com/byuhkorea/alumnihub/internal/app/store/users"
	"github.com/byuhkorea/alumnihub/internal/app/system/formutil"
	"github.com/byuhkorea/alumnihub/internal/app/system/i18n"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler manages the leadership roster from the admin console.
type Handler struct {
	Leadership *leadershipstore.Store
	Users      *userstore.Store
	Cache      *cache.Cache
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, c *cache.Cache, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Leadership: leadershipstore.New(db),
		Users:      userstore.New(db),
		Cache:      c,
		ErrLog:     errLog,
		Log:        logger,
	}
}

// entryRow is a leadership entry joined with the profile name for the
// admin table. MemberName is blank when the profile is gone.
type entryRow struct {
	Entry      models.LeadershipEntry
	MemberName string
}

type leadershipPageData struct {
	formutil.Base
	Entries []entryRow
	Members []models.UserProfile
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/leadership                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "")
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, errMsg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Leadership.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin leadership: list failed", err, "/admin")
		return
	}

	members, err := h.Users.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin leadership: members failed", err, "/admin")
		return
	}

	byUID := make(map[string]string, len(members))
	for _, m := range members {
		byUID[m.UID] = m.Name
	}

	rows := make([]entryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entryRow{Entry: e, MemberName: byUID[e.UID]})
	}

	data := leadershipPageData{Entries: rows, Members: members}
	formutil.SetBase(&data.Base, r, "Manage Leadership", "/admin")
	data.Title = data.L.T("admin.leadership")
	if errMsg != "" {
		data.SetError(errMsg)
	}

	templates.Render(w, r, "admin_leadership", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/leadership/add                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		h.renderList(w, r, loc.T("error.generic"))
		return
	}

	uid := strings.TrimSpace(r.FormValue("uid"))
	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))

	if uid == "" || title == "" {
		h.renderList(w, r, loc.T("form.required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The uid must reference an existing profile; a roster entry for a
	// stranger would never render.
	if _, err := h.Users.Get(ctx, uid); err != nil {
		if err == userstore.ErrNotFound {
			h.renderList(w, r, loc.T("admin.memberNotFound"))
			return
		}
		h.ErrLog.LogServerError(w, r, "admin leadership: member lookup failed", err, "/admin/leadership")
		return
	}

	_, err := h.Leadership.Add(ctx, models.LeadershipEntry{
		UID:         uid,
		Title:       title,
		Description: description,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin leadership: add failed", err, "/admin/leadership")
		return
	}
	h.Cache.Invalidate(cache.KeyLeadership)

	http.Redirect(w, r, "/admin/leadership", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/leadership/{id}/edit                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "/admin/leadership")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderList(w, r, i18n.FromRequest(r).T("error.generic"))
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))
	if title == "" {
		h.renderList(w, r, i18n.FromRequest(r).T("form.required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Leadership.Update(ctx, id, title, description); err != nil {
		if err == leadershipstore.ErrNotFound {
			h.ErrLog.LogNotFound(w, r, "/admin/leadership")
			return
		}
		h.ErrLog.LogServerError(w, r, "admin leadership: update failed", err, "/admin/leadership")
		return
	}
	h.Cache.Invalidate(cache.KeyLeadership)

	http.Redirect(w, r, "/admin/leadership", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/leadership/{id}/delete                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "/admin/leadership")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Leadership.Delete(ctx, id); err != nil && err != leadershipstore.ErrNotFound {
		h.ErrLog.LogServerError(w, r, "admin leadership: delete failed", err, "/admin/leadership")
		return
	}
	h.Cache.Invalidate(cache.KeyLeadership)

	http.Redirect(w, r, "/admin/leadership", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/leadership/reorder                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleReorder rewrites the display order from the posted id list.
// The form sends "order" as a comma-separated id sequence, first id on
// top.
func (h *Handler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderList(w, r, i18n.FromRequest(r).T("error.generic"))
		return
	}

	raw := strings.Split(r.FormValue("order"), ",")
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			h.ErrLog.LogBadRequest(w, r, "admin leadership: bad reorder id", err, "error.generic", "/admin/leadership")
			return
		}
		ids = append(ids, id)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Leadership.Reorder(ctx, ids); err != nil {
		h.ErrLog.LogServerError(w, r, "admin leadership: reorder failed", err, "/admin/leadership")
		return
	}
	h.Cache.Invalidate(cache.KeyLeadership)

	http.Redirect(w, r, "/admin/leadership", http.StatusSeeOther)
}
