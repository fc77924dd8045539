// Package authz provides role checks over the request context user.
//
// Access decisions are exact set-membership tests; NavRank is the one
// exception and is presentational only (which nav links to show).
package authz

import (
	"net/http"
	"strings"

	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
)

// UserCtx returns the user's role (lowercased), name, uid, and a found
// flag. ok is true only for a signed-in user with a completed profile,
// so callers can trust ok=true to mean role checks are meaningful.
func UserCtx(r *http.Request) (role string, name string, uid string, ok bool) {
	user, found := auth.CurrentUser(r)
	if !found {
		return "", "", "", false
	}
	if !user.HasProfile {
		return "", user.Name, user.UID, false
	}
	return strings.ToLower(user.Role), user.Name, user.UID, true
}

// HasAnyRole reports whether the current request's user has any of the
// given roles. Returns false if not signed in, while the session is
// still resolving, or before profile setup.
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the current user is an admin.
func IsAdmin(r *http.Request) bool {
	return HasAnyRole(r, models.RoleAdmin)
}

// IsManager reports whether the current user is a manager.
func IsManager(r *http.Request) bool {
	return HasAnyRole(r, models.RoleManager)
}

// CanManageContent reports whether the current user can create, edit,
// or delete events, news, gallery images, and leadership entries.
func CanManageContent(r *http.Request) bool {
	return HasAnyRole(r, models.RoleAdmin, models.RoleManager)
}

// NavRank orders roles for navigation filtering: a link tagged with a
// minimum role is shown when the viewer's rank is at least that high.
// This ranking never decides access; route middleware does that with
// explicit role sets.
func NavRank(role string) int {
	switch strings.ToLower(role) {
	case models.RoleAdmin:
		return 3
	case models.RoleManager:
		return 2
	case models.RoleMember:
		return 1
	default:
		return 0
	}
}
