package core

import (
	"context"
	"time"
)

// Service orchestrates the validation, query, and store layers. Writes
// run validate → derive age → uniqueness pre-check → store; reads go
// straight through the query builder to the store.
type Service struct {
	store *Store

	// now is injectable so age derivation is testable against a fixed
	// clock.
	now func() time.Time
}

// NewService creates a Service around an explicitly constructed store
// handle.
func NewService(store *Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Ping reports whether the underlying store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// List returns records matching the query. An empty search text yields
// the full dataset.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Nurse, error) {
	return s.store.List(ctx, q)
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (Nurse, error) {
	return s.store.Get(ctx, id)
}

// Create validates the payload, derives the age, and inserts a new
// record. Returns ValidationErrors, ErrDuplicateLicense, or the created
// record with its system-assigned id and timestamps.
func (s *Service) Create(ctx context.Context, in NurseInput) (Nurse, error) {
	n, err := s.prepare(ctx, in, 0)
	if err != nil {
		return Nurse{}, err
	}
	if err := s.store.Insert(ctx, &n); err != nil {
		return Nurse{}, err
	}
	return n, nil
}

// Update validates the payload and rewrites the record with the given
// id. The uniqueness check excludes the record itself, so keeping the
// same license number is not a conflict.
func (s *Service) Update(ctx context.Context, id int64, in NurseInput) (Nurse, error) {
	n, err := s.prepare(ctx, in, id)
	if err != nil {
		return Nurse{}, err
	}
	if err := s.store.Update(ctx, id, &n); err != nil {
		return Nurse{}, err
	}
	return n, nil
}

// Delete removes the record with the given id, or returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// prepare runs the full validation stage and builds the normalized
// record: format checks first (collected exhaustively), then the
// license uniqueness pre-check against the store, then age derivation
// from the date of birth at the current clock.
func (s *Service) prepare(ctx context.Context, in NurseInput, excludeID int64) (Nurse, error) {
	if verrs := ValidateInput(&in); len(verrs) > 0 {
		return Nurse{}, verrs
	}

	// dateonly already validated the shape, so this cannot fail here.
	dob, err := time.Parse(dateLayout, in.DateOfBirth)
	if err != nil {
		return Nurse{}, ValidationErrors{{Field: "date_of_birth", Message: fieldMessages["date_of_birth.dateonly"]}}
	}

	// A future date of birth would derive a negative age, which the
	// check constraint on the age column rejects. Surface it as a field
	// error instead. The clock comparison needs the service clock, so
	// this check lives here rather than in the validator.
	if dob.After(s.now()) {
		return Nurse{}, ValidationErrors{{Field: "date_of_birth", Message: fieldMessages["date_of_birth.future"]}}
	}

	taken, err := s.store.ExistsWithLicense(ctx, in.LicenseNumber, excludeID)
	if err != nil {
		return Nurse{}, err
	}
	if taken {
		return Nurse{}, ErrDuplicateLicense
	}

	return Nurse{
		Name:          in.Name,
		LicenseNumber: in.LicenseNumber,
		DateOfBirth:   Date{dob},
		Age:           AgeAt(dob, s.now()),
	}, nil
}
