package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(1990, time.May, 1)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"1990-05-01"` {
		t.Errorf("Marshal() = %s, want %q", b, `"1990-05-01"`)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	for _, input := range []string{`"05/01/1990"`, `"1990-13-40"`, `12345`, `""`} {
		var d Date
		if err := json.Unmarshal([]byte(input), &d); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", input)
		}
	}
}

func TestNurse_JSONShape(t *testing.T) {
	created := time.Date(2024, time.May, 2, 10, 30, 0, 0, time.UTC)
	n := Nurse{
		ID:            1,
		Name:          "Ann",
		LicenseNumber: "LIC1",
		DateOfBirth:   NewDate(1990, time.May, 1),
		Age:           34,
		CreatedAt:     created,
		UpdatedAt:     created,
	}

	b, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if m["date_of_birth"] != "1990-05-01" {
		t.Errorf("date_of_birth = %v, want 1990-05-01", m["date_of_birth"])
	}
	if m["license_number"] != "LIC1" {
		t.Errorf("license_number = %v, want LIC1", m["license_number"])
	}
	if m["age"] != float64(34) {
		t.Errorf("age = %v, want 34", m["age"])
	}
}
