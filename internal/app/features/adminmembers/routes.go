package adminmembers

import (
	_ "github.com/byuhkorea/alumnihub/internal/app/features/adminmembers/views"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes is admin-only; managers do not see role management.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireProfile)
	r.Use(sm.RequireRole(models.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Post("/{uid}/role", h.HandleRole)

	return r
}
