// Package registrations provides the store adapter for lead submissions.
//
// Three implementations satisfy Store: Mongo (primary), Dynamo (the managed
// NoSQL variant), and Memory (dev mode and tests). The service layer only
// sees the interface; the backend is chosen once at startup.
package registrations

import (
	"context"
	"errors"
	"time"

	"github.com/hknair/leadgate/internal/domain/models"
)

// CollectionName is the Mongo collection (and the default Dynamo table name).
const CollectionName = "registrations"

var (
	// ErrNoDocument is returned by GetByID and Update when no record has
	// the given id.
	ErrNoDocument = errors.New("registration not found")

	// ErrUnavailable wraps connectivity and timeout failures from the
	// backing store so callers can map them to a 503.
	ErrUnavailable = errors.New("store unavailable")
)

// Field names a dedup lookup key.
type Field string

const (
	FieldPhone Field = "phone"
	FieldEmail Field = "email"
)

// Filter narrows a listing. Zero values mean "any".
type Filter struct {
	Status      string
	InquiryType string
}

// Patch carries a partial update. Nil pointers leave the field unchanged;
// a pointer to the empty string is an explicit value.
type Patch struct {
	Status *string
	Notes  *string
}

// Store is the capability set required of any backing store.
type Store interface {
	// Insert persists a new registration and returns it with the
	// store-assigned id filled in.
	Insert(ctx context.Context, reg models.Registration) (models.Registration, error)

	// ExistsSince reports whether any registration has the given field
	// value with created_at at or after since.
	ExistsSince(ctx context.Context, field Field, value string, since time.Time) (bool, error)

	// GetByID fetches one registration. ErrNoDocument when absent.
	GetByID(ctx context.Context, id string) (models.Registration, error)

	// Update applies a partial update and returns the updated record.
	// ErrNoDocument when absent.
	Update(ctx context.Context, id string, p Patch) (models.Registration, error)

	// List returns one page ordered by created_at descending, plus the
	// total number of records matching the filter.
	List(ctx context.Context, f Filter, skip, limit int64) ([]models.Registration, int64, error)

	// Ping verifies connectivity for health checks.
	Ping(ctx context.Context) error
}
