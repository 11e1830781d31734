package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

const sessionCookieName = "lamsa_admin_session"
const minSecretLen = 32

// SessionTTL is how long an admin session stays valid after login.
const SessionTTL = 24 * time.Hour

var (
	// ErrInvalidToken is returned for malformed or tampered tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for well-formed tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")
)

// CreateSessionToken generates a signed admin session token that expires at
// the given time. The payload is "admin:<unix expiry>"; the signature is an
// HMAC-SHA256 over the payload.
func CreateSessionToken(expiresAt time.Time, secret []byte) string {
	payload := "admin:" + strconv.FormatInt(expiresAt.Unix(), 10)
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(payload)) + "." + sig
}

// VerifySessionToken validates the token signature and expiry.
func VerifySessionToken(token string, secret []byte, now time.Time) error {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return ErrInvalidToken
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return ErrInvalidToken
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return ErrInvalidToken
	}

	rest, ok := strings.CutPrefix(string(payload), "admin:")
	if !ok {
		return ErrInvalidToken
	}
	expiry, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return ErrInvalidToken
	}
	if now.After(time.Unix(expiry, 0)) {
		return ErrTokenExpired
	}
	return nil
}

// SessionCookieName is the admin session cookie name.
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes derives the session signing key from the configured
// secret string, zero-padding to a minimum of 32 bytes.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
