// Package viewdata builds the base view model embedded by every page.
package viewdata

import (
	"net/http"
	"strings"

	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/authz"
	"github.com/byuhkorea/alumnihub/internal/app/system/i18n"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// BaseVM contains common fields for all view models. Embed it in
// feature view models:
//
//	type pageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := pageData{BaseVM: viewdata.NewBaseVM(r, "Events", "/")}
type BaseVM struct {
	// Locale for template translation: {{.L.T "nav.events"}}.
	L    *i18n.Locale
	Lang string

	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	HasProfile bool
	Role       string
	UserName   string

	// Navigation visibility (presentational ranking only; access is
	// enforced by route middleware, never by these flags).
	ShowDirectory bool
	ShowAdmin     bool
	ShowMembers   bool

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	CSRFToken string
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	loc := i18n.FromRequest(r)

	var (
		signedIn, hasProfile bool
		role, name           string
	)
	if u, ok := auth.CurrentUser(r); ok {
		signedIn = true
		hasProfile = u.HasProfile
		name = u.Name
		if hasProfile {
			role = strings.ToLower(u.Role)
		}
	}

	rank := authz.NavRank(role)

	return BaseVM{
		L:             loc,
		Lang:          loc.Lang,
		SiteName:      loc.T("site.name"),
		IsLoggedIn:    signedIn,
		HasProfile:    hasProfile,
		Role:          role,
		UserName:      name,
		ShowDirectory: rank >= 2,
		ShowAdmin:     rank >= 2,
		ShowMembers:   rank >= 3,
		Title:         title,
		BackURL:       httpnav.ResolveBackURL(r, backDefault),
		CurrentPath:   httpnav.CurrentPath(r),
		CSRFToken:     csrf.Token(r),
	}
}
