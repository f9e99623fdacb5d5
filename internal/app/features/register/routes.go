// internal/app/features/register/routes.go
package register

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the public intake endpoint. A non-nil
// guard (e.g. a rate limiter) is applied to the whole subtree.
func Routes(h *Handler, guard func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	if guard != nil {
		r.Use(guard)
	}
	r.Post("/", h.Submit) // mounted under /api/register
	return r
}
