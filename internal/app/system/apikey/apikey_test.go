package apikey_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hknair/leadgate/internal/app/system/apikey"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func protected(t *testing.T, keyHash string) http.Handler {
	t.Helper()
	mw := apikey.Middleware(keyHash, zap.NewNop())
	if mw == nil {
		t.Fatal("middleware should be enabled for a non-empty hash")
	}
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hashFor(t *testing.T, key string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestMiddleware_DisabledWhenNoHash(t *testing.T) {
	if mw := apikey.Middleware("", zap.NewNop()); mw != nil {
		t.Error("expected nil middleware for empty hash")
	}
}

func TestMiddleware_AllowsCorrectKey(t *testing.T) {
	h := protected(t, hashFor(t, "sesame"))

	req := httptest.NewRequest("GET", "/api/registrations", nil)
	req.Header.Set("Authorization", "Bearer sesame")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestMiddleware_RejectsWrongKey(t *testing.T) {
	h := protected(t, hashFor(t, "sesame"))

	req := httptest.NewRequest("GET", "/api/registrations", nil)
	req.Header.Set("Authorization", "Bearer open-barley")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestMiddleware_RejectsMissingHeader(t *testing.T) {
	h := protected(t, hashFor(t, "sesame"))

	req := httptest.NewRequest("GET", "/api/registrations", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
