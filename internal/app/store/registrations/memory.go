package registrations

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hknair/leadgate/internal/domain/models"
)

// Memory is an in-process Store for dev mode and tests. It mirrors the
// semantics of the database-backed adapters, including created_at-descending
// listing and partial updates.
type Memory struct {
	mu   sync.RWMutex
	byID map[string]models.Registration
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{byID: make(map[string]models.Registration)}
}

func (s *Memory) Insert(ctx context.Context, reg models.Registration) (models.Registration, error) {
	reg.ID = uuid.NewString()
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.byID[reg.ID] = reg
	s.mu.Unlock()
	return reg, nil
}

func (s *Memory) ExistsSince(ctx context.Context, field Field, value string, since time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, reg := range s.byID {
		if reg.CreatedAt.Before(since) {
			continue
		}
		switch field {
		case FieldPhone:
			if reg.Phone == value {
				return true, nil
			}
		case FieldEmail:
			if reg.Email == value {
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *Memory) GetByID(ctx context.Context, id string) (models.Registration, error) {
	s.mu.RLock()
	reg, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return models.Registration{}, ErrNoDocument
	}
	return reg, nil
}

func (s *Memory) Update(ctx context.Context, id string, p Patch) (models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.byID[id]
	if !ok {
		return models.Registration{}, ErrNoDocument
	}
	if p.Status != nil {
		reg.Status = *p.Status
	}
	if p.Notes != nil {
		reg.Notes = *p.Notes
	}
	s.byID[id] = reg
	return reg, nil
}

func (s *Memory) List(ctx context.Context, f Filter, skip, limit int64) ([]models.Registration, int64, error) {
	s.mu.RLock()
	matched := make([]models.Registration, 0, len(s.byID))
	for _, reg := range s.byID {
		if f.Status != "" && reg.Status != f.Status {
			continue
		}
		if f.InquiryType != "" && reg.InquiryType != f.InquiryType {
			continue
		}
		matched = append(matched, reg)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	if skip >= total {
		return []models.Registration{}, total, nil
	}
	matched = matched[skip:]
	if limit > 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (s *Memory) Ping(ctx context.Context) error { return nil }
