// Package register serves the public intake endpoint.
package register

import (
	"context"
	"errors"
	"net/http"

	"github.com/hknair/leadgate/internal/app/service/registration"
	"github.com/hknair/leadgate/internal/app/system/apiutil"
	"github.com/hknair/leadgate/internal/app/system/inputval"
	"github.com/hknair/leadgate/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies for the register endpoint.
type Handler struct {
	Svc *registration.Service
	Log *zap.Logger
	Dev bool
}

// NewHandler constructs a register Handler. dev controls whether internal
// error detail is echoed to clients.
func NewHandler(svc *registration.Service, logger *zap.Logger, dev bool) *Handler {
	return &Handler{Svc: svc, Log: logger, Dev: dev}
}

// submitRequest is the POST /api/register body.
type submitRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	State       string `json:"state"`
	City        string `json:"city"`
	InquiryType string `json:"inquiryType"`
}

// Submit handles POST /api/register.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !apiutil.DecodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	receipt, err := h.Svc.Submit(ctx, inputval.Candidate{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		State:       req.State,
		City:        req.City,
		InquiryType: req.InquiryType,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	apiutil.OK(w, http.StatusCreated, "registration submitted successfully", receipt)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	var verr *registration.ValidationError
	switch {
	case errors.Is(err, registration.ErrFieldsRequired):
		apiutil.Fail(w, http.StatusBadRequest, registration.ErrFieldsRequired.Error())
	case errors.As(err, &verr):
		apiutil.FailValidation(w, verr.Error(), verr.Messages)
	case errors.Is(err, registration.ErrDuplicate):
		apiutil.Fail(w, http.StatusConflict, registration.ErrDuplicate.Error())
	case errors.Is(err, registration.ErrStoreUnavailable):
		h.Log.Error("register: store unavailable", zap.Error(err))
		apiutil.Fail(w, http.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		apiutil.Internal(w, h.Log, err, h.Dev)
	}
}
