package give

import (
	"net/http"

	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the donation information page. Static content only;
// payment processing is handled off-site.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// GET /give
func (h *Handler) ServeGive(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Give", "/"),
	}
	data.Title = data.L.T("nav.give")

	templates.Render(w, r, "give", data)
}
