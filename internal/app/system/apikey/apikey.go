// Package apikey guards the admin routes with a shared bearer key.
//
// The key itself is never configured; only its bcrypt hash is
// (admin_key_hash). An empty hash disables the guard, which keeps local
// development friction-free while production deployments set the hash.
package apikey

import (
	"net/http"
	"strings"

	"github.com/hknair/leadgate/internal/app/system/apiutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Middleware returns a chi-compatible middleware that checks the
// Authorization: Bearer header against keyHash. A nil return means the
// guard is disabled.
func Middleware(keyHash string, log *zap.Logger) func(http.Handler) http.Handler {
	if keyHash == "" {
		return nil
	}
	hash := []byte(keyHash)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := bearerToken(r)
			if key == "" {
				apiutil.Fail(w, http.StatusUnauthorized, "missing admin key")
				return
			}
			if err := bcrypt.CompareHashAndPassword(hash, []byte(key)); err != nil {
				log.Warn("admin key rejected", zap.String("remote", r.RemoteAddr))
				apiutil.Fail(w, http.StatusUnauthorized, "invalid admin key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, prefix))
}
