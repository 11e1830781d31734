package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Lang identifies one of the two supported site languages.
type Lang string

const (
	// Arabic is the default site language.
	Arabic Lang = "ar"
	// English is the secondary site language.
	English Lang = "en"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "lamsa_lang"

	cookieMaxAge = int(365 * 24 * time.Hour / time.Second)
)

var matcher = language.NewMatcher([]language.Tag{
	language.Arabic, // first tag is the fallback
	language.English,
})

// Dir returns the document text direction for the language.
func (l Lang) Dir() string {
	if l == English {
		return "ltr"
	}
	return "rtl"
}

// Valid reports whether l is a supported language code.
func (l Lang) Valid() bool {
	return l == Arabic || l == English
}

// Resolve determines the language for a request: the lang query parameter
// wins, then the language cookie, then the Accept-Language header. The bool
// reports whether the choice came from the query parameter and should be
// persisted as a cookie.
func Resolve(r *http.Request) (Lang, bool) {
	if v := Lang(strings.TrimSpace(r.URL.Query().Get(LangParam))); v.Valid() {
		return v, true
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if v := Lang(cookie.Value); v.Valid() {
			return v, false
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			_, idx, _ := matcher.Match(tags...)
			if idx == 1 {
				return English, false
			}
			return Arabic, false
		}
	}

	return Arabic, false
}

// SetCookie persists the selected language on the response.
func SetCookie(w http.ResponseWriter, lang Lang) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
