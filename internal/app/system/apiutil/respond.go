// Package apiutil writes the JSON envelope every endpoint uses.
//
// Success bodies carry {"success":true} plus optional message, data, and
// pagination. Failures carry {"success":false,"message":...} and, for
// validation failures, the individual messages under "errors".
package apiutil

import (
	"encoding/json"
	"net/http"

	"github.com/hknair/leadgate/internal/app/system/paging"
	"go.uber.org/zap"
)

// Envelope is the wire shape shared by all responses.
type Envelope struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Data       any          `json:"data,omitempty"`
	Pagination *paging.Meta `json:"pagination,omitempty"`
	Errors     []string     `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK writes a success envelope with the given status, message, and data.
func OK(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// OKList writes a success envelope containing a page of results plus its
// pagination summary.
func OKList(w http.ResponseWriter, data any, meta paging.Meta) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data, Pagination: &meta})
}

// Fail writes a failure envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Message: message})
}

// FailValidation writes a 400 with the joined message plus the individual
// validation messages.
func FailValidation(w http.ResponseWriter, message string, errs []string) {
	write(w, http.StatusBadRequest, Envelope{Success: false, Message: message, Errors: errs})
}

// Internal logs err and writes a 500. The error detail reaches the client
// only when dev is true; production clients get a generic message.
func Internal(w http.ResponseWriter, log *zap.Logger, err error, dev bool) {
	log.Error("internal error", zap.Error(err))
	msg := "internal server error"
	if dev && err != nil {
		msg = err.Error()
	}
	Fail(w, http.StatusInternalServerError, msg)
}

// DecodeJSON decodes a request body into dst. On failure it writes a 400
// and returns false; the handler should return immediately.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Fail(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
