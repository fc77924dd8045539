package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	UID        string
	Name       string
	Email      string
	Role       string
	HasProfile bool
}

// AdminUser returns a TestUser with the admin role.
func AdminUser() TestUser {
	return TestUser{
		UID:        "google-sub-admin",
		Name:       "Test Admin",
		Email:      "admin@test.com",
		Role:       models.RoleAdmin,
		HasProfile: true,
	}
}

// ManagerUser returns a TestUser with the manager role.
func ManagerUser() TestUser {
	return TestUser{
		UID:        "google-sub-manager",
		Name:       "Test Manager",
		Email:      "manager@test.com",
		Role:       models.RoleManager,
		HasProfile: true,
	}
}

// MemberUser returns a TestUser with the member role.
func MemberUser() TestUser {
	return TestUser{
		UID:        "google-sub-member",
		Name:       "Test Member",
		Email:      "member@test.com",
		Role:       models.RoleMember,
		HasProfile: true,
	}
}

// SignedInWithoutProfile returns a TestUser who has authenticated with
// Google but not completed profile setup.
func SignedInWithoutProfile() TestUser {
	return TestUser{
		UID:   "google-sub-new",
		Name:  "New Person",
		Email: "new@test.com",
	}
}

// WithUser adds a user to the request context for testing authenticated
// handlers. This bypasses the session middleware and injects the user
// directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	su := &auth.SessionUser{
		UID:        user.UID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		HasProfile: user.HasProfile,
	}
	return auth.WithTestUser(r, su)
}

// NewAuthenticatedRequest creates an HTTP request with a user in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return WithUser(req, user)
}

// NewFormRequest creates a POST request carrying form-encoded data.
func NewFormRequest(target, form string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
