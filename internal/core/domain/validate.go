package domain

import (
	"fmt"
	"strings"
)

// ValidateEmail checks that email has a local@domain.tld shape: at
// least one character before the @, after the @, and after a dot in
// the domain part, none of them whitespace or a second @. It does not
// check DNS or deliverability.
func ValidateEmail(email string) error {
	local, rest, ok := strings.Cut(email, "@")
	if !ok || !validEmailSegment(local) {
		return fmt.Errorf("%w: invalid email format: %q", ErrInvalidInput, email)
	}
	dom, tld, ok := strings.Cut(rest, ".")
	if !ok || !validEmailSegment(dom) {
		return fmt.Errorf("%w: invalid email format: %q", ErrInvalidInput, email)
	}
	// The TLD may itself contain dots (e.g. co.uk); every segment must
	// be non-empty.
	for _, seg := range strings.Split(tld, ".") {
		if !validEmailSegment(seg) {
			return fmt.Errorf("%w: invalid email format: %q", ErrInvalidInput, email)
		}
	}
	return nil
}

func validEmailSegment(s string) bool {
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, "@ \t\n\r")
}

// ValidatePhoneNumber checks E.164-style phone numbers: an optional
// leading +, then 2 to 15 digits with a non-zero first digit.
func ValidatePhoneNumber(phone string) error {
	digits := strings.TrimPrefix(phone, "+")
	if len(digits) < 2 || len(digits) > 15 {
		return fmt.Errorf("%w: invalid phone number format: %q", ErrInvalidInput, phone)
	}
	if digits[0] == '0' {
		return fmt.Errorf("%w: invalid phone number format: %q", ErrInvalidInput, phone)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: invalid phone number format: %q", ErrInvalidInput, phone)
		}
	}
	return nil
}

// RequiredFields checks that each named field is present and non-falsy
// in data. Falsy values (empty string, numeric zero, false, nil) count
// as missing. That is deliberate: the remote billing API rejects
// zero-amount line items, so a zero amount is treated the same as an
// absent one. Fails on the first missing field.
func RequiredFields(data map[string]any, fields ...string) error {
	for _, field := range fields {
		v, ok := data[field]
		if !ok || isFalsy(v) {
			return fmt.Errorf("%w: missing required field: %s", ErrInvalidInput, field)
		}
	}
	return nil
}

func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	default:
		return false
	}
}
