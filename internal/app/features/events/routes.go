package events

import (
	_ "github.com/byuhkorea/alumnihub/internal/app/features/events/views"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes serves the public event pages. RSVP posts require a signed-in
// member with a completed profile.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)

	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Use(sm.RequireProfile)
		r.Post("/{id}/rsvp", h.HandleRSVP)
		r.Post("/{id}/rsvp/cancel", h.HandleCancelRSVP)
	})

	return r
}
