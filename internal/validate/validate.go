// Package validate holds the field-level rules enforced on every entity
// mutation. Each rule is a pure function returning a *ValidationError on
// violation; the entity setters in internal/model call these before
// committing a value, so an invalid assignment never changes state.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ValidationError reports a single rule violation on a named field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errorf builds a ValidationError for the given field.
func Errorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

var telephonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

const passwordSymbols = "!@#$%^&*"

func stringLength(field, value string, min, max int) error {
	if value == "" {
		return Errorf(field, "%s is required", field)
	}
	if len(value) < min || len(value) > max {
		return Errorf(field, "%s must be between %d and %d characters", field, min, max)
	}
	return nil
}

// Username checks a landlord username: non-empty, 3-50 characters.
func Username(v string) error {
	return stringLength("username", v, 3, 50)
}

// Password checks the password strength rule: at least one uppercase
// letter, at least one symbol from !@#$%^&*, minimum length 6.
func Password(v string) error {
	if v == "" {
		return Errorf("password", "password is required")
	}
	if len(v) < 6 {
		return Errorf("password", "password must be at least 6 characters")
	}
	var hasUpper, hasSymbol bool
	for _, r := range v {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if strings.ContainsRune(passwordSymbols, r) {
			hasSymbol = true
		}
	}
	if !hasUpper || !hasSymbol {
		return Errorf("password", "password must contain at least one uppercase letter and one symbol (%s)", passwordSymbols)
	}
	return nil
}

// FirstName checks a tenant first name: non-empty, 3-50 characters.
func FirstName(v string) error {
	return stringLength("first_name", v, 3, 50)
}

// LastName checks a tenant last name: non-empty, 3-50 characters.
func LastName(v string) error {
	return stringLength("last_name", v, 3, 50)
}

// Occupation checks a tenant occupation: non-empty, 3-50 characters.
func Occupation(v string) error {
	return stringLength("occupation", v, 3, 50)
}

// Telephone checks the xxx-xxx-xxxx telephone format.
func Telephone(v string) error {
	if v == "" {
		return Errorf("telephone", "telephone is required")
	}
	if !telephonePattern.MatchString(v) {
		return Errorf("telephone", "telephone must match xxx-xxx-xxxx format")
	}
	return nil
}

// Address checks a rental building address: non-empty, 3-200 characters.
func Address(v string) error {
	return stringLength("address", v, 3, 200)
}

// PropertyTypeName checks a property type name: non-empty, 3-50 characters.
func PropertyTypeName(v string) error {
	return stringLength("property_type_name", v, 3, 50)
}

// Price checks a payment amount under the given field name: integer
// strictly greater than 100.
func Price(field string, v int) error {
	if v <= 100 {
		return Errorf(field, "%s must be greater than 100", field)
	}
	return nil
}

// PaymentPeriod checks the billing cycle label, e.g. "02-2024".
func PaymentPeriod(v string) error {
	if v == "" {
		return Errorf("payment_period", "payment_period is required")
	}
	if len(v) != 7 {
		return Errorf("payment_period", "payment_period must be exactly 7 characters")
	}
	return nil
}
