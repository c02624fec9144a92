package core

// errors.go defines the error taxonomy shared by the store, the service,
// and the web layer:
//
//   - ValidationErrors — malformed or missing input (maps to 400)
//   - ErrDuplicateLicense — license number already in use (maps to 409)
//   - ErrNotFound — no record with the addressed id (maps to 404)
//   - anything else — store/connectivity failure (maps to 500)
//
// The database-level unique index on license_number is the authoritative
// guard against duplicate licenses; translateError turns its violation
// into ErrDuplicateLicense so two racing creates still resolve to a
// single Conflict instead of duplicate rows.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when the addressed id has no matching row.
var ErrNotFound = errors.New("nurse not found")

// ErrDuplicateLicense is returned when a license number collides with a
// different record's.
var ErrDuplicateLicense = errors.New("license number already in use")

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects all field-level failures for one payload.
// It implements error so the service can return it through the normal
// error path.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation (class 23, integrity constraint violation).
const uniqueViolation = "23505"

// translateError maps low-level store errors to the service taxonomy.
// A unique violation on the license index becomes ErrDuplicateLicense;
// everything else passes through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateLicense
	}
	return err
}
