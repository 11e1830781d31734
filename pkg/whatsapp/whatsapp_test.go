package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func TestLink_NoText(t *testing.T) {
	if got := Link("966562602106", ""); got != "https://wa.me/966562602106" {
		t.Errorf("unexpected link %q", got)
	}
}

func TestLink_SanitizesFormattedNumber(t *testing.T) {
	if got := Link("+966 56 260 2106", ""); got != "https://wa.me/966562602106" {
		t.Errorf("unexpected link %q", got)
	}
}

func TestLink_EscapesArabicText(t *testing.T) {
	got := Link("966562602106", "أريد استشارة بخصوص مشروع: فيلا الرياض")

	if !strings.HasPrefix(got, "https://wa.me/966562602106?text=") {
		t.Fatalf("unexpected link %q", got)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("link is not a valid URL: %v", err)
	}
	if text := u.Query().Get("text"); !strings.Contains(text, "فيلا الرياض") {
		t.Errorf("pre-filled text lost in round trip: %q", text)
	}
}
