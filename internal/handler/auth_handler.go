package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/lamsa-decor/backend/internal/i18n"
	"github.com/lamsa-decor/backend/internal/service"
	"github.com/lamsa-decor/backend/pkg/auth"
)

// AuthHandler handles the admin login and logout endpoints.
type AuthHandler struct {
	authService   service.AuthService
	sessionSecret []byte
	secureCookie  bool
}

// NewAuthHandler creates an AuthHandler. secureCookie should be true when
// the site is served over HTTPS.
func NewAuthHandler(authService service.AuthService, sessionSecret []byte, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessionSecret: sessionSecret,
		secureCookie:  secureCookie,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login. On success it sets the signed
// session cookie; a wrong password answers 401 with the localized message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	lang, _ := i18n.Resolve(r)
	msgs := i18n.T(lang)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "password_required", msgs.Errors.RequiredField)
		return
	}

	err := h.authService.VerifyPassword(r.Context(), req.Password)
	if errors.Is(err, service.ErrInvalidPassword) {
		writeError(w, http.StatusUnauthorized, "wrong_password", msgs.Errors.WrongPassword)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login_failed", msgs.Errors.ConnectionFailed)
		return
	}

	expiresAt := time.Now().Add(auth.SessionTTL)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    auth.CreateSessionToken(expiresAt, h.sessionSecret),
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "expires_at": expiresAt.Unix()})
}

// Logout handles POST /api/admin/logout by clearing the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
