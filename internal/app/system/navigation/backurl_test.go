package navigation

import (
	"net/http/httptest"
	"testing"
)

func TestSafeBackURL_Query(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/events/new?return=/admin/events", nil)
	got := SafeBackURL(r, BackURLOptions{Fallback: "/admin"})
	if got != "/admin/events" {
		t.Errorf("got %q, want /admin/events", got)
	}
}

func TestSafeBackURL_RejectsOpenRedirect(t *testing.T) {
	for _, raw := range []string{
		"https://evil.example.com",
		"//evil.example.com",
	} {
		r := httptest.NewRequest("GET", "/x?return="+raw, nil)
		got := SafeBackURL(r, BackURLOptions{Fallback: "/safe"})
		if got != "/safe" {
			t.Errorf("return=%q: got %q, want /safe", raw, got)
		}
	}
}

func TestSafeBackURL_EnforcesPrefix(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?return=/profile", nil)
	got := SafeBackURL(r, BackURLOptions{AllowedPrefix: "/admin", Fallback: "/admin"})
	if got != "/admin" {
		t.Errorf("got %q, want /admin", got)
	}
}

func TestSafeBackURL_ExcludesActionSubpaths(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?return=/admin/events/new", nil)
	got := SafeBackURL(r, BackURLOptions{
		AllowedPrefix:    "/admin/events",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete"},
		Fallback:         "/admin/events",
	})
	if got != "/admin/events" {
		t.Errorf("got %q, want /admin/events", got)
	}
}

func TestSafeBackURL_DefaultFallback(t *testing.T) {
	r := httptest.NewRequest("GET", "/x", nil)
	if got := SafeBackURL(r, BackURLOptions{}); got != "/" {
		t.Errorf("got %q, want /", got)
	}
}
