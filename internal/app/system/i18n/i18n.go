// Package i18n resolves the viewer's language (Korean or English) and
// translates UI strings. Korean is the site default; English is the
// fallback catalog for keys missing from a translation.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

const cookieName = "lang"

var supported = []language.Tag{
	language.Korean, // default
	language.English,
}

var matcher = language.NewMatcher(supported)

// Locale translates message keys for one language.
type Locale struct {
	Lang string // "ko" or "en"
	msgs map[string]string
}

// T returns the translation for key, falling back to the English
// catalog and finally to the key itself so missing entries are visible
// rather than blank.
func (l *Locale) T(key string) string {
	if s, ok := l.msgs[key]; ok {
		return s
	}
	if s, ok := messagesEN[key]; ok {
		return s
	}
	return key
}

// ForLanguage returns the locale for a language code, defaulting to
// Korean for anything unrecognized.
func ForLanguage(lang string) *Locale {
	if lang == "en" {
		return &Locale{Lang: "en", msgs: messagesEN}
	}
	return &Locale{Lang: "ko", msgs: messagesKO}
}

// FromRequest resolves the viewer's locale: explicit ?lang= switch,
// then the lang cookie, then Accept-Language matching.
func FromRequest(r *http.Request) *Locale {
	if q := r.URL.Query().Get("lang"); q == "ko" || q == "en" {
		return ForLanguage(q)
	}
	if c, err := r.Cookie(cookieName); err == nil && (c.Value == "ko" || c.Value == "en") {
		return ForLanguage(c.Value)
	}
	tag, _ := language.MatchStrings(matcher, r.Header.Get("Accept-Language"))
	base, _ := tag.Base()
	return ForLanguage(base.String())
}

// Persist is middleware that saves an explicit ?lang= choice in a
// cookie so it sticks across navigation.
func Persist(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("lang"); q == "ko" || q == "en" {
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    q,
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r)
	})
}
