package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslateError(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "nurses_license_number_idx"}
	otherErr := &pgconn.PgError{Code: "23502"}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"unique violation becomes conflict", uniqueErr, ErrDuplicateLicense},
		{"wrapped unique violation becomes conflict", fmt.Errorf("insert: %w", uniqueErr), ErrDuplicateLicense},
		{"other pg error passes through", otherErr, otherErr},
		{"plain error passes through", errors.New("boom"), errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want == nil {
				if got != nil {
					t.Errorf("translateError() = %v, want nil", got)
				}
				return
			}
			if errors.Is(tt.want, ErrDuplicateLicense) {
				if !errors.Is(got, ErrDuplicateLicense) {
					t.Errorf("translateError() = %v, want ErrDuplicateLicense", got)
				}
				return
			}
			if got.Error() != tt.want.Error() {
				t.Errorf("translateError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	verrs := ValidationErrors{
		{Field: "name", Message: "Name is required"},
		{Field: "date_of_birth", Message: "Date of birth must be a valid date"},
	}

	want := "validation failed: name: Name is required; date_of_birth: Date of birth must be a valid date"
	if verrs.Error() != want {
		t.Errorf("Error() = %q, want %q", verrs.Error(), want)
	}
}
