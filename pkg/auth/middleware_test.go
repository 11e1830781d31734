package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequireAdmin_NoCookie_Returns401(t *testing.T) {
	secret := SessionSecretBytes("dev-secret-change-in-production-32bytes")
	mw := RequireAdmin(secret)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_InvalidToken_Returns401(t *testing.T) {
	secret := SessionSecretBytes("dev-secret-change-in-production-32bytes")
	mw := RequireAdmin(secret)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: "invalid.token"})
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_ExpiredToken_Returns401(t *testing.T) {
	secret := SessionSecretBytes("dev-secret-change-in-production-32bytes")
	token := CreateSessionToken(time.Now().Add(-time.Hour), secret)
	mw := RequireAdmin(secret)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: token})
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_ValidToken_CallsNextWithAdminContext(t *testing.T) {
	secret := SessionSecretBytes("dev-secret-change-in-production-32bytes")
	token := CreateSessionToken(time.Now().Add(SessionTTL), secret)
	mw := RequireAdmin(secret)

	var sawAdmin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAdmin = IsAdminFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: token})
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !sawAdmin {
		t.Error("expected admin flag in request context")
	}
}
