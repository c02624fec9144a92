// Package core provides the business logic for nurse record management:
// validation, query building, persistence, and export. It has no HTTP
// dependencies and can be driven by any transport.
package core

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Date is a calendar date without a time component. It marshals to and
// from JSON as YYYY-MM-DD and maps to the SQL DATE type.
type Date struct {
	time.Time
}

// NewDate returns a Date for the given year, month, and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON parses a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	t, err := time.Parse("2006-01-02", s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Scan implements sql.Scanner so pgx can read DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer so pgx can write DATE columns.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Nurse is one nurse record as stored. Age is derived from DateOfBirth
// at write time and never accepted from the caller.
type Nurse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number"`
	DateOfBirth   Date      `json:"date_of_birth"`
	Age           int       `json:"age"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NurseInput is a candidate payload for creating or updating a nurse.
// Age is optional and, when present, only checked for plausibility; the
// stored value is always recomputed from DateOfBirth server-side.
type NurseInput struct {
	Name          string `json:"name" validate:"required,max=255"`
	LicenseNumber string `json:"license_number" validate:"required,max=50"`
	DateOfBirth   string `json:"date_of_birth" validate:"required,dateonly"`
	Age           *int   `json:"age,omitempty" validate:"omitempty,min=0"`
}

// ListQuery describes a read against the nurse table: an optional
// case-insensitive substring search over name and license number, and a
// sort specification checked against the field allow-list.
type ListQuery struct {
	SearchText string
	SortField  string
	SortOrder  string
}
