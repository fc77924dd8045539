package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"go.uber.org/zap"
)

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-0123456789", "test-session", "", 24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager() error: %v", err)
	}
	return sm
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func htmlRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Accept", "text/html")
	return req
}

func signedIn(r *http.Request, role string, hasProfile bool) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		UID:        "sub-123",
		Name:       "Ji-woo Kim",
		Email:      "jiwoo@test.com",
		Role:       role,
		HasProfile: hasProfile,
	})
}

func TestRequireSignedIn_RedirectsAnonymousToLogin(t *testing.T) {
	sm := newTestSessionManager(t)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	sm.RequireSignedIn(next).ServeHTTP(rec, htmlRequest("GET", "/profile"))

	if *called {
		t.Error("next handler ran for anonymous request")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login?return=%2Fprofile" {
		t.Errorf("location: got %q", loc)
	}
}

func TestRequireSignedIn_Api401(t *testing.T) {
	sm := newTestSessionManager(t)
	next, _ := okHandler()

	rec := httptest.NewRecorder()
	sm.RequireSignedIn(next).ServeHTTP(rec, httptest.NewRequest("GET", "/profile", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireSignedIn_PassesSignedInUser(t *testing.T) {
	sm := newTestSessionManager(t)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	sm.RequireSignedIn(next).ServeHTTP(rec, signedIn(htmlRequest("GET", "/profile"), models.RoleMember, true))

	if !*called {
		t.Error("next handler did not run for signed-in user")
	}
}

func TestRequireRole_WrongRoleRedirectsHome(t *testing.T) {
	sm := newTestSessionManager(t)
	next, called := okHandler()
	mw := sm.RequireRole(models.RoleManager, models.RoleAdmin)

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, signedIn(htmlRequest("GET", "/admin"), models.RoleMember, true))

	if *called {
		t.Error("next handler ran for wrong role")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("location: got %q, want /", loc)
	}
}

func TestRequireRole_NoHierarchy(t *testing.T) {
	// Admin is not implicitly allowed where only manager is listed;
	// membership in the set is the whole check.
	sm := newTestSessionManager(t)
	next, called := okHandler()
	mw := sm.RequireRole(models.RoleManager)

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, signedIn(htmlRequest("GET", "/admin"), models.RoleAdmin, true))

	if *called {
		t.Error("admin passed a manager-only gate")
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("location: got %q, want /", loc)
	}
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	sm := newTestSessionManager(t)
	next, called := okHandler()
	mw := sm.RequireRole(models.RoleManager, models.RoleAdmin)

	for _, role := range []string{models.RoleManager, models.RoleAdmin} {
		*called = false
		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, signedIn(htmlRequest("GET", "/admin"), role, true))
		if !*called {
			t.Errorf("role %q was not allowed", role)
		}
	}
}

func TestRequireRole_NoProfileRedirectsHome(t *testing.T) {
	sm := newTestSessionManager(t)
	next, called := okHandler()
	mw := sm.RequireRole(models.RoleMember)

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, signedIn(htmlRequest("GET", "/directory"), models.RoleMember, false))

	if *called {
		t.Error("next handler ran without a completed profile")
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("location: got %q, want /", loc)
	}
}

func TestRequireRole_HTMXGets403WithRedirectHeader(t *testing.T) {
	sm := newTestSessionManager(t)
	next, _ := okHandler()
	mw := sm.RequireRole(models.RoleAdmin)

	req := signedIn(htmlRequest("GET", "/admin"), models.RoleMember, true)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
	if loc := rec.Header().Get("HX-Redirect"); loc != "/" {
		t.Errorf("HX-Redirect: got %q, want /", loc)
	}
}

func TestRequireProfile_RedirectsToSetup(t *testing.T) {
	sm := newTestSessionManager(t)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	sm.RequireProfile(next).ServeHTTP(rec, signedIn(htmlRequest("GET", "/directory"), "", false))

	if *called {
		t.Error("next handler ran without a profile")
	}
	if loc := rec.Header().Get("Location"); loc != "/profile/setup" {
		t.Errorf("location: got %q, want /profile/setup", loc)
	}
}

func TestRequireProfile_PassesCompletedProfile(t *testing.T) {
	sm := newTestSessionManager(t)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	sm.RequireProfile(next).ServeHTTP(rec, signedIn(htmlRequest("GET", "/directory"), models.RoleMember, true))

	if !*called {
		t.Error("next handler did not run with completed profile")
	}
}

func TestCurrentUser_EmptyWithoutSession(t *testing.T) {
	if _, ok := auth.CurrentUser(httptest.NewRequest("GET", "/", nil)); ok {
		t.Error("CurrentUser() reported a user on a bare request")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	sm := newTestSessionManager(t)

	// Write the session cookie.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/google/callback", nil)
	err := sm.CreateSession(rec, req, &auth.SessionUser{
		UID:   "sub-456",
		Name:  "Min-jun Lee",
		Email: "minjun@test.com",
	})
	if err != nil {
		t.Fatalf("CreateSession() error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("CreateSession() set no cookie")
	}

	// Read it back through the middleware. No fetcher is installed, so
	// the user surfaces without profile data.
	req2 := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}

	var got *auth.SessionUser
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	})
	sm.LoadSessionUser(inner).ServeHTTP(httptest.NewRecorder(), req2)

	if got == nil {
		t.Fatal("no user in context after LoadSessionUser")
	}
	if got.UID != "sub-456" || got.Email != "minjun@test.com" {
		t.Errorf("unexpected user: %+v", got)
	}
	if got.HasProfile {
		t.Error("HasProfile should be false without a fetcher")
	}
}
