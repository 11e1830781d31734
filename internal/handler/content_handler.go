package handler

import (
	"net/http"

	"github.com/lamsa-decor/backend/internal/i18n"
)

// ContentHandler serves the bilingual site copy. The frontend fetches the
// whole catalog for the resolved language and renders with the returned
// text direction; requesting ?lang=<code> is the language toggle and
// persists the choice as a cookie.
type ContentHandler struct{}

// NewContentHandler creates a ContentHandler.
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

type contentResponse struct {
	Lang     i18n.Lang     `json:"lang"`
	Dir      string        `json:"dir"`
	Messages i18n.Messages `json:"messages"`
}

// Content handles GET /api/content.
func (h *ContentHandler) Content(w http.ResponseWriter, r *http.Request) {
	lang, persist := i18n.Resolve(r)
	if persist {
		i18n.SetCookie(w, lang)
	}

	writeJSON(w, http.StatusOK, contentResponse{
		Lang:     lang,
		Dir:      lang.Dir(),
		Messages: i18n.T(lang),
	})
}
