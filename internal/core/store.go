package core

// store.go is the record store: the sole writer of the nurses table.
// All writes are atomic single-row statements; NotFound is signaled via
// ErrNotFound rather than bubbling a driver error to callers.

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

//go:embed schema.sql
var schemaSQL string

// nurseColumns is the column list every read selects, in struct order.
const nurseColumns = "id, name, license_number, date_of_birth, age, created_at, updated_at"

// Store provides persistence for nurse records. The handle is
// constructed once in main and passed in explicitly; it is scoped to
// the process lifetime.
type Store struct {
	db DBTX
}

// NewStore creates a Store backed by the given database handle.
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

// EnsureSchema applies the embedded DDL. The statements are idempotent,
// so running them on every startup is safe. The unique index on
// license_number created here is the authoritative duplicate guard.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// Ping verifies the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// List returns all records matching the query's search text, in the
// query's sort order.
func (s *Store) List(ctx context.Context, q ListQuery) ([]Nurse, error) {
	where, args := buildSearchClause(q.SearchText)
	query := fmt.Sprintf("SELECT %s FROM nurses%s %s",
		nurseColumns, where, buildSortClause(q.SortField, q.SortOrder))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list nurses: %w", err)
	}
	defer rows.Close()

	var nurses []Nurse
	for rows.Next() {
		var n Nurse
		if err := rows.Scan(&n.ID, &n.Name, &n.LicenseNumber, &n.DateOfBirth,
			&n.Age, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan nurse: %w", err)
		}
		nurses = append(nurses, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return nurses, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (Nurse, error) {
	query := fmt.Sprintf("SELECT %s FROM nurses WHERE id = $1", nurseColumns)

	var n Nurse
	err := s.db.QueryRow(ctx, query, id).Scan(&n.ID, &n.Name, &n.LicenseNumber,
		&n.DateOfBirth, &n.Age, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Nurse{}, ErrNotFound
		}
		return Nurse{}, fmt.Errorf("get nurse %d: %w", id, err)
	}
	return n, nil
}

// Insert stores a new record and fills in the system-assigned id and
// timestamps. A license collision surfaces as ErrDuplicateLicense.
func (s *Store) Insert(ctx context.Context, n *Nurse) error {
	query := `
		INSERT INTO nurses (name, license_number, date_of_birth, age)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := s.db.QueryRow(ctx, query, n.Name, n.LicenseNumber, n.DateOfBirth, n.Age).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert nurse: %w", translateError(err))
	}
	return nil
}

// Update rewrites the record with the given id and refreshes
// updated_at. Returns ErrNotFound if no row matches, and
// ErrDuplicateLicense on a license collision with a different record.
func (s *Store) Update(ctx context.Context, id int64, n *Nurse) error {
	query := `
		UPDATE nurses
		SET name = $1, license_number = $2, date_of_birth = $3, age = $4, updated_at = now()
		WHERE id = $5
		RETURNING created_at, updated_at`

	err := s.db.QueryRow(ctx, query, n.Name, n.LicenseNumber, n.DateOfBirth, n.Age, id).
		Scan(&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update nurse %d: %w", id, translateError(err))
	}
	n.ID = id
	return nil
}

// Delete removes the record with the given id. Deleting an id that does
// not exist returns ErrNotFound; a second delete of the same id is
// therefore NotFound, not a distinct error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM nurses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete nurse %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsWithLicense reports whether some record other than excludeID
// already uses the given license number (case-sensitive exact match).
// Pass excludeID 0 when creating. This is a fast pre-check only; the
// unique index is the authoritative guard under concurrency.
func (s *Store) ExistsWithLicense(ctx context.Context, license string, excludeID int64) (bool, error) {
	query := "SELECT EXISTS (SELECT 1 FROM nurses WHERE license_number = $1 AND id <> $2)"

	var exists bool
	if err := s.db.QueryRow(ctx, query, license, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check license %q: %w", license, err)
	}
	return exists, nil
}
