package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestAllowWithinLimit(t *testing.T) {
	l := New(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d unexpectedly blocked", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("fourth request should be blocked")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatal("other clients should not be affected")
	}
}

func TestAllowWindowSlides(t *testing.T) {
	l := New(1, time.Minute)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }

	if !l.Allow("c") {
		t.Fatal("first request blocked")
	}
	if l.Allow("c") {
		t.Fatal("second request within window allowed")
	}

	l.now = func() time.Time { return base.Add(61 * time.Second) }
	if !l.Allow("c") {
		t.Fatal("request after window expiry blocked")
	}
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name   string
		fwd    string
		real   string
		remote string
		want   string
	}{
		{"forwarded_first", "203.0.113.9, 10.0.0.1", "", "10.0.0.2:1234", "203.0.113.9"},
		{"real_ip", "", "203.0.113.7", "10.0.0.2:1234", "203.0.113.7"},
		{"remote_addr", "", "", "198.51.100.4:5678", "198.51.100.4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tc.remote
			if tc.fwd != "" {
				r.Header.Set("X-Forwarded-For", tc.fwd)
			}
			if tc.real != "" {
				r.Header.Set("X-Real-IP", tc.real)
			}
			if got := ClientIP(r); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMiddlewareDisabled(t *testing.T) {
	if mw := Middleware(0, time.Minute, zap.NewNop()); mw != nil {
		t.Fatal("zero limit should disable the middleware")
	}
}

func TestMiddlewareBlocks(t *testing.T) {
	mw := Middleware(1, time.Minute, zap.NewNop())
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
	req.RemoteAddr = "192.0.2.1:40000"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first request: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: got %d, want 429", rec.Code)
	}
}
