package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/ipartes/quote-service/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled
// PostgreSQL). Emails are stored as a text[] column so a supplier stays a
// single row.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := s.pool.Query(ctx, queryListSuppliers)
	if err != nil {
		return nil, fmt.Errorf("querying suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var sup domain.Supplier
		if err := scanSupplier(rows, &sup); err != nil {
			return nil, fmt.Errorf("scanning supplier: %w", err)
		}
		suppliers = append(suppliers, sup)
	}
	return suppliers, rows.Err()
}

func (s *PostgresStore) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	sup := &domain.Supplier{}
	err := scanSupplier(s.pool.QueryRow(ctx, queryGetSupplier, id), sup)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying supplier: %w", err)
	}
	return sup, nil
}

// FindByManufacturer filters in memory: the loose containment match does
// not index well and the directory stays small.
func (s *PostgresStore) FindByManufacturer(ctx context.Context, name string) ([]domain.Supplier, error) {
	all, err := s.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Supplier
	for _, sup := range all {
		if sup.MatchesManufacturer(name) {
			out = append(out, sup)
		}
	}
	return out, nil
}

func (s *PostgresStore) UpsertSupplier(
	ctx context.Context,
	manufacturer, email string,
) (*domain.Supplier, bool, error) {
	existing := &domain.Supplier{}
	err := scanSupplier(s.pool.QueryRow(ctx, queryGetSupplierByManufacturer, pgx.NamedArgs{
		"manufacturer": manufacturer,
	}), existing)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sup := &domain.Supplier{
			Manufacturer: manufacturer,
			Emails:       []string{email},
		}
		args := pgx.NamedArgs{
			"manufacturer": sup.Manufacturer,
			"emails":       sup.Emails,
		}
		if err := s.pool.QueryRow(ctx, queryInsertSupplier, args).Scan(
			&sup.ID, &sup.CreatedAt, &sup.UpdatedAt,
		); err != nil {
			return nil, false, fmt.Errorf("inserting supplier: %w", err)
		}
		return sup, true, nil
	case err != nil:
		return nil, false, fmt.Errorf("querying supplier: %w", err)
	}

	if existing.HasEmail(email) {
		return nil, false, ErrEmailExists
	}

	existing.Emails = append(existing.Emails, email)
	if err := s.updateEmails(ctx, existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *PostgresStore) AddEmail(ctx context.Context, id, email string) (*domain.Supplier, error) {
	sup, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	if sup.HasEmail(email) {
		return nil, ErrEmailExists
	}

	sup.Emails = append(sup.Emails, email)
	if err := s.updateEmails(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *PostgresStore) RemoveEmail(ctx context.Context, id, email string) (*domain.Supplier, bool, error) {
	sup, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !sup.HasEmail(email) {
		return nil, false, ErrNotFound
	}

	kept := make([]string, 0, len(sup.Emails))
	for _, e := range sup.Emails {
		if e != email {
			kept = append(kept, e)
		}
	}
	sup.Emails = kept

	if len(sup.Emails) == 0 {
		if err := s.DeleteSupplier(ctx, id); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	if err := s.updateEmails(ctx, sup); err != nil {
		return nil, false, err
	}
	return sup, false, nil
}

func (s *PostgresStore) DeleteSupplier(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteSupplier, id)
	if err != nil {
		return fmt.Errorf("deleting supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) CountSuppliers(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queryCountSuppliers).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting suppliers: %w", err)
	}
	return count, nil
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) updateEmails(ctx context.Context, sup *domain.Supplier) error {
	args := pgx.NamedArgs{
		"id":     sup.ID,
		"emails": sup.Emails,
	}
	err := s.pool.QueryRow(ctx, queryUpdateSupplierEmails, args).Scan(&sup.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating supplier emails: %w", err)
	}
	return nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanSupplier(row scannable, sup *domain.Supplier) error {
	return row.Scan(&sup.ID, &sup.Manufacturer, &sup.Emails, &sup.CreatedAt, &sup.UpdatedAt)
}
