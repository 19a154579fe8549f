package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jwhitfield/careersite/backend/pkg/utils"
)

// IPRateLimiter implements a per-IP sliding-window limit in process memory.
// Designed so a Redis-backed limiter could replace it without touching the
// routes.
type IPRateLimiter struct {
	maxReq int
	window time.Duration

	mu    sync.Mutex
	state map[string][]int64 // ip -> unix nanos within window
}

// NewIPRateLimiter bounds each client IP to maxReq requests per window and
// starts the background cleanup loop.
func NewIPRateLimiter(maxReq int, window time.Duration) *IPRateLimiter {
	l := &IPRateLimiter{
		maxReq: maxReq,
		window: window,
		state:  make(map[string][]int64),
	}
	go l.cleanupLoop()
	return l
}

func clientIP(r *http.Request) string {
	// chi's RealIP middleware runs first and rewrites RemoteAddr from
	// X-Forwarded-For / X-Real-IP.
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware rejects over-limit requests with 429 before any other work.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		now := time.Now().UnixNano()
		cutoff := now - int64(l.window)

		l.mu.Lock()
		var filtered []int64
		for _, ts := range l.state[ip] {
			if ts >= cutoff {
				filtered = append(filtered, ts)
			}
		}

		// Only admitted requests count toward the window, so a locked-out
		// client regains access as soon as its admitted requests age out.
		if len(filtered) >= l.maxReq {
			oldest := filtered[0]
			l.state[ip] = filtered
			l.mu.Unlock()

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", l.maxReq))
			w.Header().Set("X-RateLimit-Remaining", "0")
			retryAfter := int((oldest + int64(l.window) - now) / 1e9)
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			utils.RespondError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		filtered = append(filtered, now)
		l.state[ip] = filtered
		remaining := l.maxReq - len(filtered)
		l.mu.Unlock()

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", l.maxReq))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		next.ServeHTTP(w, r)
	})
}

func (l *IPRateLimiter) cleanupLoop() {
	tick := time.NewTicker(time.Minute)
	defer tick.Stop()
	for range tick.C {
		cutoff := time.Now().UnixNano() - int64(l.window)
		l.mu.Lock()
		for ip, arr := range l.state {
			var filtered []int64
			for _, ts := range arr {
				if ts >= cutoff {
					filtered = append(filtered, ts)
				}
			}
			if len(filtered) == 0 {
				delete(l.state, ip)
			} else {
				l.state[ip] = filtered
			}
		}
		l.mu.Unlock()
	}
}
