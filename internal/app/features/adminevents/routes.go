package adminevents

import (
	_ "github.com/byuhkorea/alumnihub/internal/app/features/adminevents/views"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole(models.RoleManager, models.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Get("/new", h.ServeNew)
	r.Post("/new", h.HandleNewPost)
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEditPost)
	r.Post("/{id}/delete", h.HandleDelete)
	r.Get("/{id}/attendees", h.ServeAttendees)

	return r
}
