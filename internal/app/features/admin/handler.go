// Package admin serves the registration listing and update endpoints used
// by the back-office.
package admin

import (
	"errors"
	"net/http"

	"github.com/hknair/leadgate/internal/app/service/registration"
	"github.com/hknair/leadgate/internal/app/system/apiutil"
	"go.uber.org/zap"
)

// Handler holds dependencies for the admin endpoints.
type Handler struct {
	Svc *registration.Service
	Log *zap.Logger
	Dev bool
}

// NewHandler constructs an admin Handler.
func NewHandler(svc *registration.Service, logger *zap.Logger, dev bool) *Handler {
	return &Handler{Svc: svc, Log: logger, Dev: dev}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registration.ErrInvalidStatus):
		apiutil.Fail(w, http.StatusBadRequest, registration.ErrInvalidStatus.Error())
	case errors.Is(err, registration.ErrNotFound):
		apiutil.Fail(w, http.StatusNotFound, registration.ErrNotFound.Error())
	case errors.Is(err, registration.ErrStoreUnavailable):
		h.Log.Error("admin: store unavailable", zap.Error(err))
		apiutil.Fail(w, http.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		apiutil.Internal(w, h.Log, err, h.Dev)
	}
}
