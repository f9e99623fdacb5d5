package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/hknair/leadgate/internal/app/store/registrations"
	"github.com/hknair/leadgate/internal/domain/models"
)

// Fixtures provides helpers for seeding registrations into any Store.
type Fixtures struct {
	store registrations.Store
	t     *testing.T
}

// NewFixtures wraps a store for test seeding.
func NewFixtures(t *testing.T, store registrations.Store) *Fixtures {
	t.Helper()
	return &Fixtures{store: store, t: t}
}

// CreateRegistration inserts a valid registration created now.
func (f *Fixtures) CreateRegistration(ctx context.Context, name, phone, email string) models.Registration {
	f.t.Helper()
	return f.CreateRegistrationAt(ctx, name, phone, email, time.Now().UTC())
}

// CreateRegistrationAt inserts a registration with an explicit creation
// time, for exercising the dedup window and listing order.
func (f *Fixtures) CreateRegistrationAt(ctx context.Context, name, phone, email string, createdAt time.Time) models.Registration {
	f.t.Helper()

	reg, err := f.store.Insert(ctx, models.Registration{
		Name:        name,
		Phone:       phone,
		Email:       email,
		State:       "Karnataka",
		City:        "Bengaluru",
		InquiryType: models.InquiryRegister,
		Status:      models.StatusNew,
		CreatedAt:   createdAt,
	})
	if err != nil {
		f.t.Fatalf("failed to seed registration: %v", err)
	}
	return reg
}
