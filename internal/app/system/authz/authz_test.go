package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/byuhkorea/alumnihub/internal/app/system/authz"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/byuhkorea/alumnihub/internal/testutil"
)

func TestNavRank(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{models.RoleAdmin, 3},
		{models.RoleManager, 2},
		{models.RoleMember, 1},
		{"ADMIN", 3},
		{"", 0},
		{"stranger", 0},
	}
	for _, tt := range tests {
		if got := authz.NavRank(tt.role); got != tt.want {
			t.Errorf("NavRank(%q) = %d, want %d", tt.role, got, tt.want)
		}
	}
}

func TestHasAnyRole(t *testing.T) {
	anon := httptest.NewRequest("GET", "/", nil)
	if authz.HasAnyRole(anon, models.RoleMember) {
		t.Error("anonymous request passed a role check")
	}

	member := testutil.NewAuthenticatedRequest("GET", "/", testutil.MemberUser())
	if !authz.HasAnyRole(member, models.RoleMember) {
		t.Error("member failed the member check")
	}
	if authz.HasAnyRole(member, models.RoleManager, models.RoleAdmin) {
		t.Error("member passed a manager/admin check")
	}

	// Signed in without a profile: no role checks pass, whatever is asked.
	fresh := testutil.NewAuthenticatedRequest("GET", "/", testutil.SignedInWithoutProfile())
	if authz.HasAnyRole(fresh, models.RoleMember, models.RoleManager, models.RoleAdmin) {
		t.Error("profile-less user passed a role check")
	}
}

func TestCanManageContent(t *testing.T) {
	if !authz.CanManageContent(testutil.NewAuthenticatedRequest("GET", "/", testutil.ManagerUser())) {
		t.Error("manager cannot manage content")
	}
	if !authz.CanManageContent(testutil.NewAuthenticatedRequest("GET", "/", testutil.AdminUser())) {
		t.Error("admin cannot manage content")
	}
	if authz.CanManageContent(testutil.NewAuthenticatedRequest("GET", "/", testutil.MemberUser())) {
		t.Error("member can manage content")
	}
}

func TestUserCtx(t *testing.T) {
	role, name, uid, ok := authz.UserCtx(testutil.NewAuthenticatedRequest("GET", "/", testutil.AdminUser()))
	if !ok {
		t.Fatal("UserCtx() not ok for admin")
	}
	if role != "admin" || name == "" || uid == "" {
		t.Errorf("UserCtx() = (%q, %q, %q)", role, name, uid)
	}

	_, _, _, ok = authz.UserCtx(testutil.NewAuthenticatedRequest("GET", "/", testutil.SignedInWithoutProfile()))
	if ok {
		t.Error("UserCtx() ok without a profile")
	}
}
