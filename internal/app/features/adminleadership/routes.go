package adminleadership

import (
	_ "github.com/byuhkorea/alumnihub/internal/app/features/adminleadership/views"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireProfile)
	r.Use(sm.RequireRole(models.RoleManager, models.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Post("/add", h.HandleAdd)
	r.Post("/reorder", h.HandleReorder)
	r.Post("/{id}/edit", h.HandleEdit)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
