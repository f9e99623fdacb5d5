package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hknair/leadgate/internal/app/store/registrations"
	"github.com/hknair/leadgate/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Store registrations.Store
	Log   *zap.Logger
}

// NewHandler constructs a health Handler over the active store backend.
func NewHandler(store registrations.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// Serve handles GET /api/health.
//
// On success: 200 and
//
//	{ "status":"ok", "message":"service is healthy", "timestamp":"…" }
//
// On store failure: 503 with status "error".
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:    "ok",
		Message:   "service is healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.Store.Ping(ctx); err != nil {
		h.Log.Error("health-check: store ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Message = "store unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
