// Package auth owns the cookie session and the route guards built on it.
//
// The session cookie carries the signed-in identity (Google subject id,
// display name, email, photo). The member profile is NOT cached in the
// cookie: LoadSessionUser re-fetches it through a UserFetcher on each
// request, so role changes and new profiles take effect immediately.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAuthKey   = "is_authenticated"
	uidKey      = "uid"
	nameKey     = "user_name"
	emailKey    = "user_email"
	photoKey    = "user_photo"
)

// SessionUser is the per-request snapshot injected into r.Context().
//
// UID/Name/Email/PhotoURL come from the identity provider. Role and
// HasProfile come from the member profile; while no profile exists,
// HasProfile is false and Role is empty, so every role check fails and
// the only reachable member page is /profile/setup.
type SessionUser struct {
	UID      string
	Name     string
	Email    string
	PhotoURL string

	HasProfile bool
	Role       string
}

// Profile is the slice of the member profile the session layer needs.
type Profile struct {
	Name  string
	Email string
	Role  string
}

// UserFetcher loads the member profile for a signed-in identity.
// Implementations return nil when no profile exists (not an error).
type UserFetcher interface {
	FetchProfile(ctx context.Context, uid string) *Profile
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the session user and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// SessionManager owns the cookie store and the auth middleware.
// It is passed explicitly to features; there is no package-level store.
type SessionManager struct {
	store   *sessions.CookieStore
	name    string
	log     *zap.Logger
	fetcher UserFetcher
}

// NewSessionManager builds a cookie-backed session manager.
//
// In production (secure=true) cookies are Secure with SameSite=Lax; in
// local dev over http they are accepted without the Secure flag.
func NewSessionManager(sessionKey, name, domain string, ttl time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide >=32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{
		store: store,
		name:  name,
		log:   logger,
	}, nil
}

// SetUserFetcher installs the profile fetcher used by LoadSessionUser.
func (sm *SessionManager) SetUserFetcher(f UserFetcher) {
	sm.fetcher = f
}

// Store exposes the underlying cookie store (logout needs its options).
func (sm *SessionManager) Store() *sessions.CookieStore {
	return sm.store
}

// GetSession returns the request's session, decoding errors included.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return sm.store.Get(r, sm.name)
}

// CreateSession writes the identity into the session cookie.
func (sm *SessionManager) CreateSession(w http.ResponseWriter, r *http.Request, u *SessionUser) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values[isAuthKey] = true
	sess.Values[uidKey] = u.UID
	sess.Values[nameKey] = u.Name
	sess.Values[emailKey] = u.Email
	sess.Values[photoKey] = u.PhotoURL
	return sess.Save(r, w)
}

// ClearSession expires the session cookie. Sign-out is best effort from
// the UI's perspective, but the error is returned so callers can show a
// message when even the cookie write fails.
func (sm *SessionManager) ClearSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		sm.log.Warn("session decode failed during logout", zap.Error(err))
	}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// LoadSessionUser injects the SessionUser into context if signed in.
// The member profile is fetched fresh on every request.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.store.Get(r, sm.name)

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				UID:      getString(sess, uidKey),
				Name:     getString(sess, nameKey),
				Email:    getString(sess, emailKey),
				PhotoURL: getString(sess, photoKey),
			}
			if u.UID != "" {
				if sm.fetcher != nil {
					if p := sm.fetcher.FetchProfile(r.Context(), u.UID); p != nil {
						u.HasProfile = true
						u.Role = p.Role
						if p.Name != "" {
							u.Name = p.Name
						}
						if p.Email != "" {
							u.Email = p.Email
						}
					}
				}
				r = withUser(r, u)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context.
// If not signed in:
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=..., preserving the original
//     location so sign-in can return the user there.
//   - API:  401 Unauthorized.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		redirectToLogin(w, r)
	})
}

// RequireRole ensures the current user's profile role is in the allowed
// set. The check is plain set membership; there is no role hierarchy.
// Signed in with the wrong role (or no profile yet) redirects silently
// to the public home page rather than an error page.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				redirectToLogin(w, r)
				return
			}

			if _, has := set[strings.ToLower(u.Role)]; !has || !u.HasProfile {
				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/")
					w.WriteHeader(http.StatusForbidden)
					return
				}
				if wantsHTML(r) {
					http.Redirect(w, r, "/", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireProfile ensures the signed-in user has completed profile
// setup, redirecting to /profile/setup otherwise. Used on member pages
// that render profile data.
func (sm *SessionManager) RequireProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := CurrentUser(r)
		if !ok {
			redirectToLogin(w, r)
			return
		}
		if !u.HasProfile {
			http.Redirect(w, r, "/profile/setup", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithTestUser injects u into the request context the same way
// LoadSessionUser does. Handler tests use it to act as a signed-in
// user without a cookie round trip.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

/* helpers */

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	ret := url.QueryEscape(currentURI(r))

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/login?return="+ret)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if wantsHTML(r) {
		http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
