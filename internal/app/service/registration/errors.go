// internal/app/service/registration/errors.go
package registration

import (
	"errors"
	"strings"
)

var (
	// ErrFieldsRequired is the cheap pre-check failure before full
	// validation runs.
	ErrFieldsRequired = errors.New("all fields are required")

	// ErrDuplicate means a registration with the same phone or email was
	// submitted inside the dedup window.
	ErrDuplicate = errors.New("a registration with this phone or email already exists")

	// ErrInvalidStatus rejects an update whose status is not one of the
	// four allowed values.
	ErrInvalidStatus = errors.New(`status must be "new", "contacted", "enrolled" or "closed"`)

	// ErrNotFound means no registration has the requested id.
	ErrNotFound = errors.New("registration not found")

	// ErrStoreUnavailable surfaces store connectivity failures so the HTTP
	// layer can answer 503 instead of 500.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries the individual field messages from the validator.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
