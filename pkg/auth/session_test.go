package auth

import (
	"strings"
	"testing"
	"time"
)

func TestCreateAndVerifySessionToken(t *testing.T) {
	secret := SessionSecretBytes("dev-secret-change-in-production-32bytes")
	now := time.Now()
	token := CreateSessionToken(now.Add(SessionTTL), secret)

	if err := VerifySessionToken(token, secret, now); err != nil {
		t.Errorf("expected valid token, got %v", err)
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	secret := SessionSecretBytes("dev-secret-change-in-production-32bytes")
	now := time.Now()
	token := CreateSessionToken(now.Add(-time.Minute), secret)

	if err := VerifySessionToken(token, secret, now); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	secret := SessionSecretBytes("dev-secret-change-in-production-32bytes")
	other := SessionSecretBytes("a-completely-different-secret-value-here")
	token := CreateSessionToken(time.Now().Add(SessionTTL), secret)

	if err := VerifySessionToken(token, other, time.Now()); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifySessionToken_Tampered(t *testing.T) {
	secret := SessionSecretBytes("dev-secret-change-in-production-32bytes")
	token := CreateSessionToken(time.Now().Add(SessionTTL), secret)

	tampered := strings.Replace(token, ".", "x.", 1)
	if err := VerifySessionToken(tampered, secret, time.Now()); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for tampered token, got %v", err)
	}

	if err := VerifySessionToken("no-dot-at-all", secret, time.Now()); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestSessionSecretBytes_PadsShortSecrets(t *testing.T) {
	b := SessionSecretBytes("short")
	if len(b) != 32 {
		t.Errorf("expected 32 bytes, got %d", len(b))
	}
}
