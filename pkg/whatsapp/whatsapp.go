// Package whatsapp builds wa.me deep links used as the "request
// consultation" call to action. Not an API integration; the link opens the
// chat app with a pre-filled message.
package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// Link returns a wa.me URL for the given business number (digits with
// country code) and optional pre-filled message text.
func Link(number, text string) string {
	u := baseURL + sanitizeNumber(number)
	if text == "" {
		return u
	}
	return u + "?text=" + url.QueryEscape(text)
}

// sanitizeNumber strips everything except digits so formatted numbers like
// "+966 56 260 2106" produce a valid wa.me path segment.
func sanitizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
