package handler

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/lamsa-decor/backend/internal/i18n"
	"golang.org/x/time/rate"
)

// SecurityHeaders adds security response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		next.ServeHTTP(w, r)
	})
}

// LoginRateLimiter throttles admin login attempts per client IP using token
// buckets. Entries for idle IPs are dropped periodically.
type LoginRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*loginLimiterEntry
	limit    rate.Limit
	burst    int
}

type loginLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginRateLimiter creates a limiter allowing perMinute attempts per IP
// with a burst of the same size.
func NewLoginRateLimiter(perMinute int) *LoginRateLimiter {
	rl := &LoginRateLimiter{
		limiters: make(map[string]*loginLimiterEntry),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *LoginRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-15 * time.Minute)
		rl.mu.Lock()
		for ip, e := range rl.limiters {
			if e.lastSeen.Before(cutoff) {
				delete(rl.limiters, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *LoginRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	e, ok := rl.limiters[ip]
	if !ok {
		e = &loginLimiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = e
	}
	e.lastSeen = time.Now()
	return e.limiter.Allow()
}

// Middleware enforces the limit, answering 429 with a localized message.
func (rl *LoginRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			lang, _ := i18n.Resolve(r)
			writeError(w, http.StatusTooManyRequests, "too_many_attempts", i18n.T(lang).Errors.TooManyAttempts)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the remote host, ignoring the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
