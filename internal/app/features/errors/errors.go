// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler renders error pages. No DB needed.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the localized "page not found" page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, "", "/")
	base.Title = base.L.T("error.notFoundTitle")

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", pageData{
		BaseVM:  base,
		Message: base.L.T("error.notFound"),
	})
}
