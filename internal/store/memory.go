package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/ipartes/quote-service/pkg/types"
)

// MemoryStore is an in-process Store. Intended for tests and for running
// the service without any database; everything is lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	suppliers map[string]*domain.Supplier
	order     []string
}

// NewMemoryStore creates an empty in-memory supplier directory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		suppliers: make(map[string]*domain.Supplier),
	}
}

func (s *MemoryStore) ListSuppliers(_ context.Context) ([]domain.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Supplier, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneSupplier(s.suppliers[id]))
	}
	return out, nil
}

func (s *MemoryStore) GetSupplier(_ context.Context, id string) (*domain.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sup, ok := s.suppliers[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := cloneSupplier(sup)
	return &c, nil
}

func (s *MemoryStore) FindByManufacturer(_ context.Context, name string) ([]domain.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Supplier
	for _, id := range s.order {
		if s.suppliers[id].MatchesManufacturer(name) {
			out = append(out, cloneSupplier(s.suppliers[id]))
		}
	}
	return out, nil
}

func (s *MemoryStore) UpsertSupplier(
	_ context.Context,
	manufacturer, email string,
) (*domain.Supplier, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		sup := s.suppliers[id]
		if !strings.EqualFold(sup.Manufacturer, manufacturer) {
			continue
		}
		if sup.HasEmail(email) {
			return nil, false, ErrEmailExists
		}
		sup.Emails = append(sup.Emails, email)
		sup.UpdatedAt = time.Now().UTC()
		c := cloneSupplier(sup)
		return &c, false, nil
	}

	now := time.Now().UTC()
	sup := &domain.Supplier{
		ID:           uuid.NewString(),
		Manufacturer: manufacturer,
		Emails:       []string{email},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.suppliers[sup.ID] = sup
	s.order = append(s.order, sup.ID)

	c := cloneSupplier(sup)
	return &c, true, nil
}

func (s *MemoryStore) AddEmail(_ context.Context, id, email string) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sup, ok := s.suppliers[id]
	if !ok {
		return nil, ErrNotFound
	}
	if sup.HasEmail(email) {
		return nil, ErrEmailExists
	}

	sup.Emails = append(sup.Emails, email)
	sup.UpdatedAt = time.Now().UTC()

	c := cloneSupplier(sup)
	return &c, nil
}

func (s *MemoryStore) RemoveEmail(_ context.Context, id, email string) (*domain.Supplier, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sup, ok := s.suppliers[id]
	if !ok {
		return nil, false, ErrNotFound
	}
	if !sup.HasEmail(email) {
		return nil, false, ErrNotFound
	}

	kept := sup.Emails[:0]
	for _, e := range sup.Emails {
		if e != email {
			kept = append(kept, e)
		}
	}
	sup.Emails = kept

	if len(sup.Emails) == 0 {
		s.deleteLocked(id)
		return nil, true, nil
	}

	sup.UpdatedAt = time.Now().UTC()
	c := cloneSupplier(sup)
	return &c, false, nil
}

func (s *MemoryStore) DeleteSupplier(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.suppliers[id]; !ok {
		return ErrNotFound
	}
	s.deleteLocked(id)
	return nil
}

func (s *MemoryStore) CountSuppliers(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.suppliers), nil
}

func (s *MemoryStore) Migrate(context.Context) error { return nil }

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close(context.Context) error { return nil }

func (s *MemoryStore) deleteLocked(id string) {
	delete(s.suppliers, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func cloneSupplier(sup *domain.Supplier) domain.Supplier {
	c := *sup
	c.Emails = append([]string(nil), sup.Emails...)
	return c
}
