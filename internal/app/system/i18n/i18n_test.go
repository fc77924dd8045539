package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCatalogsCoverSameKeys(t *testing.T) {
	for k := range messagesKO {
		if _, ok := messagesEN[k]; !ok {
			t.Errorf("key %q missing from English catalog", k)
		}
	}
	for k := range messagesEN {
		if _, ok := messagesKO[k]; !ok {
			t.Errorf("key %q missing from Korean catalog", k)
		}
	}
}

func TestT_FallsBackToEnglishThenKey(t *testing.T) {
	ko := ForLanguage("ko")
	if got := ko.T("nav.events"); got != "행사" {
		t.Errorf("T(nav.events) = %q", got)
	}
	if got := ko.T("no.such.key"); got != "no.such.key" {
		t.Errorf("missing key: got %q, want the key itself", got)
	}
}

func TestForLanguage_DefaultsToKorean(t *testing.T) {
	for _, lang := range []string{"", "ko", "fr", "zz"} {
		if got := ForLanguage(lang).Lang; got != "ko" {
			t.Errorf("ForLanguage(%q).Lang = %q, want ko", lang, got)
		}
	}
	if got := ForLanguage("en").Lang; got != "en" {
		t.Errorf("ForLanguage(en).Lang = %q", got)
	}
}

func TestFromRequest_QueryBeatsCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/?lang=en", nil)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: "ko"})
	if got := FromRequest(r).Lang; got != "en" {
		t.Errorf("lang = %q, want en", got)
	}
}

func TestFromRequest_Cookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: "en"})
	if got := FromRequest(r).Lang; got != "en" {
		t.Errorf("lang = %q, want en", got)
	}
}

func TestFromRequest_AcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"en-US,en;q=0.9", "en"},
		{"ko-KR,ko;q=0.9,en;q=0.5", "ko"},
		{"", "ko"},
		{"ja-JP", "ko"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/", nil)
		if tt.header != "" {
			r.Header.Set("Accept-Language", tt.header)
		}
		if got := FromRequest(r).Lang; got != tt.want {
			t.Errorf("Accept-Language %q: lang = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestPersist_SetsCookieOnExplicitSwitch(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	Persist(next).ServeHTTP(rec, httptest.NewRequest("GET", "/events?lang=en", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName || cookies[0].Value != "en" {
		t.Fatalf("cookies = %+v", cookies)
	}

	// No ?lang=: nothing written.
	rec2 := httptest.NewRecorder()
	Persist(next).ServeHTTP(rec2, httptest.NewRequest("GET", "/events", nil))
	if len(rec2.Result().Cookies()) != 0 {
		t.Error("cookie written without explicit lang switch")
	}
}
