package admin

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hknair/leadgate/internal/app/service/registration"
	"github.com/hknair/leadgate/internal/app/system/apiutil"
	"github.com/hknair/leadgate/internal/app/system/timeouts"
)

// updateRequest is the PATCH /api/registrations/{id} body. Pointer fields
// distinguish "not provided" from an explicit empty value.
type updateRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// Update handles PATCH /api/registrations/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateRequest
	if !apiutil.DecodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	reg, err := h.Svc.UpdateStatus(ctx, id, registration.Patch{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	apiutil.OK(w, http.StatusOK, "registration updated", reg)
}
