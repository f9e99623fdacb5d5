// internal/app/features/admin/routes.go
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the admin endpoints. guard, when non-nil,
// is the admin-key middleware applied to every route.
func Routes(h *Handler, guard func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	if guard != nil {
		r.Use(guard)
	}
	r.Get("/", h.List)          // mounted under /api/registrations
	r.Patch("/{id}", h.Update)
	return r
}
