package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLang_Dir(t *testing.T) {
	if got := Arabic.Dir(); got != "rtl" {
		t.Errorf("expected rtl for Arabic, got %q", got)
	}
	if got := English.Dir(); got != "ltr" {
		t.Errorf("expected ltr for English, got %q", got)
	}
}

func TestResolve_QueryParamWins(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/content?lang=en", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "ar"})
	req.Header.Set("Accept-Language", "ar")

	lang, persist := Resolve(req)
	if lang != English {
		t.Errorf("expected en, got %q", lang)
	}
	if !persist {
		t.Error("expected query-param selection to be persisted")
	}
}

func TestResolve_InvalidQueryParamIgnored(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/content?lang=fr", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

	lang, persist := Resolve(req)
	if lang != English {
		t.Errorf("expected cookie value en, got %q", lang)
	}
	if persist {
		t.Error("cookie selection must not be re-persisted")
	}
}

func TestResolve_Cookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/content", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

	lang, _ := Resolve(req)
	if lang != English {
		t.Errorf("expected en from cookie, got %q", lang)
	}
}

func TestResolve_AcceptLanguage(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/content", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	lang, _ := Resolve(req)
	if lang != English {
		t.Errorf("expected en from Accept-Language, got %q", lang)
	}
}

func TestResolve_DefaultsToArabic(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/content", nil)

	lang, persist := Resolve(req)
	if lang != Arabic {
		t.Errorf("expected default ar, got %q", lang)
	}
	if persist {
		t.Error("default selection must not be persisted")
	}
}

// TestT_CatalogsDiffer verifies toggling the language swaps every section to
// its counterpart set rather than sharing strings between catalogs.
func TestT_CatalogsDiffer(t *testing.T) {
	ar := T(Arabic)
	en := T(English)

	if ar.Nav.Home == en.Nav.Home {
		t.Error("nav labels must differ between languages")
	}
	if ar.Errors.WrongPassword == en.Errors.WrongPassword {
		t.Error("error strings must differ between languages")
	}
	if len(ar.Services.Items) != len(en.Services.Items) {
		t.Errorf("service lists out of sync: ar=%d en=%d", len(ar.Services.Items), len(en.Services.Items))
	}
	if len(ar.Process.Steps) != len(en.Process.Steps) {
		t.Errorf("process steps out of sync: ar=%d en=%d", len(ar.Process.Steps), len(en.Process.Steps))
	}
}

func TestT_UnknownLangFallsBackToArabic(t *testing.T) {
	if got := T(Lang("fr")); got.Nav.Home != T(Arabic).Nav.Home {
		t.Error("unknown language should fall back to the Arabic catalog")
	}
}
