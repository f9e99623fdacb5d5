// Package registration orchestrates the intake workflow: validate,
// duplicate-check, persist. It only sees the Store interface, so the active
// backend (Mongo, Dynamo, memory) is invisible here.
package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hknair/leadgate/internal/app/store/registrations"
	"github.com/hknair/leadgate/internal/app/system/htmlsanitize"
	"github.com/hknair/leadgate/internal/app/system/inputval"
	"github.com/hknair/leadgate/internal/app/system/normalize"
	"github.com/hknair/leadgate/internal/app/system/paging"
	"github.com/hknair/leadgate/internal/domain/models"
	"go.uber.org/zap"
)

// DefaultDedupWindow is the lookback for the duplicate-submission check.
const DefaultDedupWindow = 24 * time.Hour

// Service implements the registration operations.
type Service struct {
	store  registrations.Store
	window time.Duration
	log    *zap.Logger
	now    func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source. Tests use this to move a submission
// in and out of the dedup window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New builds a Service over store. A non-positive window falls back to
// DefaultDedupWindow.
func New(store registrations.Store, window time.Duration, logger *zap.Logger, opts ...Option) *Service {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	s := &Service{
		store:  store,
		window: window,
		log:    logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Receipt is returned to the submitter after a successful registration.
type Receipt struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Submit validates a candidate, rejects duplicates inside the dedup window,
// and persists the registration.
//
// The duplicate check is read-then-write with no lock: two concurrent
// submissions sharing a phone or email can both pass it and both land. That
// window is accepted, not guarded.
func (s *Service) Submit(ctx context.Context, c inputval.Candidate) (Receipt, error) {
	if anyBlank(c.Name, c.Phone, c.Email, c.State, c.City) {
		return Receipt{}, ErrFieldsRequired
	}
	if msgs := inputval.Check(c); len(msgs) > 0 {
		return Receipt{}, &ValidationError{Messages: msgs}
	}

	inquiry := strings.TrimSpace(c.InquiryType)
	if inquiry == "" {
		inquiry = models.InquiryRegister
	}
	if !models.ValidInquiryType(inquiry) {
		return Receipt{}, &ValidationError{
			Messages: []string{`inquiryType must be "register" or "inquiry"`},
		}
	}

	phone := normalize.Phone(c.Phone)
	email := normalize.Email(c.Email)
	windowStart := s.now().Add(-s.window)

	dup, err := s.store.ExistsSince(ctx, registrations.FieldPhone, phone, windowStart)
	if err != nil {
		return Receipt{}, storeErr(err)
	}
	if !dup {
		dup, err = s.store.ExistsSince(ctx, registrations.FieldEmail, email, windowStart)
		if err != nil {
			return Receipt{}, storeErr(err)
		}
	}
	if dup {
		s.log.Info("duplicate registration rejected", zap.String("phone", phone))
		return Receipt{}, ErrDuplicate
	}

	reg, err := s.store.Insert(ctx, models.Registration{
		Name:        htmlsanitize.Plain(normalize.Name(c.Name)),
		Phone:       phone,
		Email:       email,
		State:       htmlsanitize.Plain(normalize.Place(c.State)),
		City:        htmlsanitize.Plain(normalize.Place(c.City)),
		InquiryType: inquiry,
		Status:      models.StatusNew,
		Notes:       "",
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return Receipt{}, storeErr(err)
	}

	s.log.Info("registration created",
		zap.String("id", reg.ID),
		zap.String("inquiry_type", reg.InquiryType))
	return Receipt{ID: reg.ID, Name: reg.Name, Email: reg.Email}, nil
}

// List returns one page of registrations ordered newest-first, with the
// pagination summary for the filtered total.
func (s *Service) List(ctx context.Context, f registrations.Filter, p paging.Page) ([]models.Registration, paging.Meta, error) {
	regs, total, err := s.store.List(ctx, f, p.Skip(), p.Limit64())
	if err != nil {
		return nil, paging.Meta{}, storeErr(err)
	}
	return regs, paging.NewMeta(p, total), nil
}

// Patch carries the admin-editable fields. Nil means "leave unchanged";
// a pointer to the empty string clears notes explicitly.
type Patch struct {
	Status *string
	Notes  *string
}

// UpdateStatus applies a partial status/notes update to one registration.
// The status value is checked before the record is even looked up.
func (s *Service) UpdateStatus(ctx context.Context, id string, p Patch) (models.Registration, error) {
	if p.Status != nil && !models.ValidStatus(*p.Status) {
		return models.Registration{}, ErrInvalidStatus
	}

	patch := registrations.Patch{Status: p.Status}
	if p.Notes != nil {
		clean := htmlsanitize.Plain(*p.Notes)
		patch.Notes = &clean
	}

	reg, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return models.Registration{}, storeErr(err)
	}
	return reg, nil
}

func anyBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}

// storeErr maps store-level failures onto the service taxonomy.
func storeErr(err error) error {
	switch {
	case errors.Is(err, registrations.ErrNoDocument):
		return ErrNotFound
	case errors.Is(err, registrations.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return err
	}
}
