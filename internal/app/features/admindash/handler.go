package admindash

import (
	"context"
	"net/http"

	"github.com/byuhkorea/alumnihub/internal/app/system/authz"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin console landing page with collection counts.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// GET /admin
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	data := struct {
		viewdata.BaseVM
		EventCount   int64
		NewsCount    int64
		GalleryCount int64
		MemberCount  int64
		IsAdmin      bool
	}{
		BaseVM:       viewdata.NewBaseVM(r, "Admin", "/"),
		EventCount:   h.count(ctx, "events"),
		NewsCount:    h.count(ctx, "news"),
		GalleryCount: h.count(ctx, "gallery"),
		MemberCount:  h.count(ctx, "users"),
		IsAdmin:      authz.IsAdmin(r),
	}
	data.Title = data.L.T("admin.title")

	templates.Render(w, r, "admin_dashboard", data)
}

// count is display-only; a failed count renders as zero rather than
// failing the whole dashboard.
func (h *Handler) count(ctx context.Context, coll string) int64 {
	n, err := h.DB.Collection(coll).CountDocuments(ctx, bson.M{})
	if err != nil {
		h.Log.Warn("admin dashboard: count failed", zap.String("collection", coll), zap.Error(err))
		return 0
	}
	return n
}
