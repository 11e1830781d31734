package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type contextKey string

const adminKey contextKey = "is_admin"

// IsAdminFromContext reports whether the request carries a valid admin session.
func IsAdminFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(adminKey).(bool)
	return v
}

// WithAdmin marks the context as carrying a valid admin session.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey, true)
}

// RequireAdmin is the middleware guarding admin routes. It verifies the
// session cookie and marks the context on success.
func RequireAdmin(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			if err := VerifySessionToken(cookie.Value, sessionSecret, time.Now()); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context())))
		})
	}
}
