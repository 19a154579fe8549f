package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	limiter := NewIPRateLimiter(2, time.Minute)
	h := limiter.Middleware(okHandler())

	for i := 0; i < 2; i++ {
		resp := doRequest(h, "10.0.0.1:1234")
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, resp.Code)
		}
	}
}

func TestRateLimiterRejectsOverLimit(t *testing.T) {
	limiter := NewIPRateLimiter(2, time.Minute)
	h := limiter.Middleware(okHandler())

	doRequest(h, "10.0.0.1:1234")
	doRequest(h, "10.0.0.1:1234")
	resp := doRequest(h, "10.0.0.1:1234")

	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
	if resp.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("expected remaining 0, got %q", resp.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimiterTracksIPsIndependently(t *testing.T) {
	limiter := NewIPRateLimiter(1, time.Minute)
	h := limiter.Middleware(okHandler())

	doRequest(h, "10.0.0.1:1234")
	if resp := doRequest(h, "10.0.0.1:1234"); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for saturated IP, got %d", resp.Code)
	}
	if resp := doRequest(h, "10.0.0.2:1234"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for fresh IP, got %d", resp.Code)
	}
}

func TestRateLimiterRejectionsDoNotExtendLockout(t *testing.T) {
	limiter := NewIPRateLimiter(1, 60*time.Millisecond)
	h := limiter.Middleware(okHandler())

	doRequest(h, "10.0.0.1:1234")

	time.Sleep(30 * time.Millisecond)
	if resp := doRequest(h, "10.0.0.1:1234"); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 inside window, got %d", resp.Code)
	}

	// The rejection above is not recorded; once the admitted request ages
	// out the client is admitted again.
	time.Sleep(40 * time.Millisecond)
	if resp := doRequest(h, "10.0.0.1:1234"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 once the admitted request aged out, got %d", resp.Code)
	}
}

func TestRateLimiterWindowExpires(t *testing.T) {
	limiter := NewIPRateLimiter(1, 50*time.Millisecond)
	h := limiter.Middleware(okHandler())

	doRequest(h, "10.0.0.1:1234")
	if resp := doRequest(h, "10.0.0.1:1234"); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 inside window, got %d", resp.Code)
	}

	time.Sleep(60 * time.Millisecond)
	if resp := doRequest(h, "10.0.0.1:1234"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 after window expired, got %d", resp.Code)
	}
}
