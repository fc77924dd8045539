package about

import (
	_ "github.com/byuhkorea/alumnihub/internal/app/features/about/views"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAbout)
	return r
}
