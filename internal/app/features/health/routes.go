package health

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted at /health. The endpoint is a
// plain GET so probes pass the CSRF middleware untouched.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
