package gallery

import (
	_ "github.com/byuhkorea/alumnihub/internal/app/features/gallery/views"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGallery)
	return r
}
