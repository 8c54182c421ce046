// Package store defines the supplier directory abstraction. All business
// logic depends on the Store interface, never on concrete implementations,
// so backends are interchangeable and handlers are testable without a
// running database.
package store

import (
	"context"
	"errors"

	domain "github.com/ipartes/quote-service/pkg/types"
)

// Sentinel errors returned by every backend. Handlers map these to HTTP
// status codes.
var (
	// ErrNotFound means the supplier id (or the email within it) does
	// not exist.
	ErrNotFound = errors.New("supplier not found")

	// ErrEmailExists means the email is already registered for the
	// supplier.
	ErrEmailExists = errors.New("email already registered")
)

// Store defines all supplier directory operations.
type Store interface {
	// ListSuppliers returns every supplier, oldest first.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// GetSupplier returns a supplier by id. ErrNotFound if absent.
	GetSupplier(ctx context.Context, id string) (*domain.Supplier, error)

	// FindByManufacturer returns suppliers whose manufacturer loosely
	// matches name (case-insensitive equals or substring either way).
	FindByManufacturer(ctx context.Context, name string) ([]domain.Supplier, error)

	// UpsertSupplier registers an email under a manufacturer. Matching
	// on manufacturer is case-insensitive exact. Returns the resulting
	// supplier and whether a new record was created. ErrEmailExists if
	// the manufacturer already lists the email.
	UpsertSupplier(ctx context.Context, manufacturer, email string) (*domain.Supplier, bool, error)

	// AddEmail appends an email to an existing supplier. ErrNotFound if
	// the id is absent, ErrEmailExists on duplicate.
	AddEmail(ctx context.Context, id, email string) (*domain.Supplier, error)

	// RemoveEmail removes an email from a supplier. Removing the last
	// email deletes the record; the returned bool reports that.
	// ErrNotFound if the id or the email is absent.
	RemoveEmail(ctx context.Context, id, email string) (*domain.Supplier, bool, error)

	// DeleteSupplier removes a supplier by id. ErrNotFound if absent.
	DeleteSupplier(ctx context.Context, id string) error

	// CountSuppliers returns the directory size.
	CountSuppliers(ctx context.Context) (int, error)

	// Migrate prepares the backend schema. No-op for backends without one.
	Migrate(ctx context.Context) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
