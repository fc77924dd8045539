package admingallery

import (
	_ "github.com/byuhkorea/alumnihub/internal/app/features/admingallery/views"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole(models.RoleManager, models.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Post("/upload", h.HandleUpload)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
