package core

// validation.go checks candidate payloads before they reach the store.
//
// Format checks (presence, length, date shape) run through
// go-playground/validator and are collected exhaustively so the client
// sees every problem at once. The license uniqueness check is a
// separate store collaboration and only runs after format checks pass,
// since it needs a trusted license string.

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayout is the only accepted date_of_birth shape (ISO-8601 date).
const dateLayout = "2006-01-02"

var validate = newValidator()

// newValidator builds the shared validator instance. Field names in
// reported errors use the json tag so they match the wire format.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// dateonly accepts only full YYYY-MM-DD calendar dates.
	v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	})

	return v
}

// fieldMessages maps "field.tag" to the message reported to clients.
var fieldMessages = map[string]string{
	"name.required":           "Name is required",
	"name.max":                "Name must be below 255 characters",
	"license_number.required": "License number is required",
	"license_number.max":      "License number must be below 50 characters",
	"date_of_birth.required":  "Date of birth is required",
	"date_of_birth.dateonly":  "Date of birth must be a valid date",
	"date_of_birth.future":    "Date of birth cannot be in the future",
	"age.min":                 "Age must be a positive integer",
}

// Normalize trims the free-text fields in place. Presence checks run
// against the trimmed values, so a whitespace-only name is rejected.
func (in *NurseInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.LicenseNumber = strings.TrimSpace(in.LicenseNumber)
}

// ValidateInput normalizes the payload and returns every field-level
// failure together, or nil if the payload is well-formed.
func ValidateInput(in *NurseInput) ValidationErrors {
	in.Normalize()

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Message: err.Error()}}
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// AgeAt returns the whole-year age at now for the given date of birth,
// using exact calendar arithmetic: a birthday not yet reached this year
// subtracts one. This is not 365-day division.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
