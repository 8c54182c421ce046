package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/ipartes/quote-service/pkg/types"
)

// FileStore persists the supplier directory as a single JSON file. Every
// mutation rewrites the file through a temp-file rename, so a crash never
// leaves a half-written directory behind. Suited to single-instance
// deployments without a database.
type FileStore struct {
	mu        sync.Mutex
	path      string
	suppliers []*domain.Supplier
}

// NewFileStore opens (or creates) the JSON directory at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading supplier file: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.suppliers); err != nil {
			return nil, fmt.Errorf("parsing supplier file %s: %w", path, err)
		}
	}
	return s, nil
}

func (s *FileStore) ListSuppliers(context.Context) ([]domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Supplier, 0, len(s.suppliers))
	for _, sup := range s.suppliers {
		out = append(out, cloneSupplier(sup))
	}
	return out, nil
}

func (s *FileStore) GetSupplier(_ context.Context, id string) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sup := range s.suppliers {
		if sup.ID == id {
			c := cloneSupplier(sup)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) FindByManufacturer(_ context.Context, name string) ([]domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Supplier
	for _, sup := range s.suppliers {
		if sup.MatchesManufacturer(name) {
			out = append(out, cloneSupplier(sup))
		}
	}
	return out, nil
}

func (s *FileStore) UpsertSupplier(
	_ context.Context,
	manufacturer, email string,
) (*domain.Supplier, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sup := range s.suppliers {
		if !strings.EqualFold(sup.Manufacturer, manufacturer) {
			continue
		}
		if sup.HasEmail(email) {
			return nil, false, ErrEmailExists
		}
		sup.Emails = append(sup.Emails, email)
		sup.UpdatedAt = time.Now().UTC()
		if err := s.persist(); err != nil {
			return nil, false, err
		}
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
	s.suppliers = append(s.suppliers, sup)
	if err := s.persist(); err != nil {
		return nil, false, err
	}

	c := cloneSupplier(sup)
	return &c, true, nil
}

func (s *FileStore) AddEmail(_ context.Context, id, email string) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sup := range s.suppliers {
		if sup.ID != id {
			continue
		}
		if sup.HasEmail(email) {
			return nil, ErrEmailExists
		}
		sup.Emails = append(sup.Emails, email)
		sup.UpdatedAt = time.Now().UTC()
		if err := s.persist(); err != nil {
			return nil, err
		}
		c := cloneSupplier(sup)
		return &c, nil
	}
	return nil, ErrNotFound
}

func (s *FileStore) RemoveEmail(_ context.Context, id, email string) (*domain.Supplier, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sup := range s.suppliers {
		if sup.ID != id {
			continue
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
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			if err := s.persist(); err != nil {
				return nil, false, err
			}
			return nil, true, nil
		}

		sup.UpdatedAt = time.Now().UTC()
		if err := s.persist(); err != nil {
			return nil, false, err
		}
		c := cloneSupplier(sup)
		return &c, false, nil
	}
	return nil, false, ErrNotFound
}

func (s *FileStore) DeleteSupplier(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sup := range s.suppliers {
		if sup.ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			return s.persist()
		}
	}
	return ErrNotFound
}

func (s *FileStore) CountSuppliers(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.suppliers), nil
}

func (s *FileStore) Migrate(context.Context) error { return nil }

// Ping verifies the directory holding the JSON file is writable.
func (s *FileStore) Ping(context.Context) error {
	dir := filepath.Dir(s.path)
	f, err := os.CreateTemp(dir, ".suppliers-ping-*")
	if err != nil {
		return fmt.Errorf("supplier file directory not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func (s *FileStore) Close(context.Context) error { return nil }

// persist writes the directory atomically. Caller holds the lock.
func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(s.suppliers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling suppliers: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing supplier file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing supplier file: %w", err)
	}
	return nil
}
