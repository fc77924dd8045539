package profile

import (
	_ "github.com/byuhkorea/alumnihub/internal/app/features/profile/views"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes serves the member's own profile. Setup is reachable without a
// profile; everything else requires one.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/setup", h.ServeSetup)
	r.Post("/setup", h.HandleSetupPost)

	r.Group(func(r chi.Router) {
		r.Use(sm.RequireProfile)
		r.Get("/", h.ServeProfile)
		r.Get("/edit", h.ServeEdit)
		r.Post("/edit", h.HandleEditPost)
	})

	return r
}
