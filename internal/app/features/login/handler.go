package login

import (
	"net/http"
	"net/url"

	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// Handler serves the sign-in page. The only sign-in method is Google
// OAuth; the actual provider round trip lives in the authgoogle
// feature, this page just links into it.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type loginPageData struct {
	viewdata.BaseVM
	GoogleURL string
	Error     string
}

// GET /login?return=…
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "/")

	// Already signed in: nothing to do here.
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, ret, http.StatusSeeOther)
		return
	}

	data := loginPageData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		GoogleURL: "/auth/google/login?return=" + url.QueryEscape(ret),
	}
	data.Title = data.L.T("login.title")

	// The OAuth flow bounces back here with ?error=… when sign-in did
	// not complete.
	if code := query.Get(r, "error"); code != "" {
		if code == "google_denied" {
			data.Error = data.L.T("login.denied")
		} else {
			data.Error = data.L.T("login.failed")
		}
	}

	templates.Render(w, r, "login", data)
}
