// Package inputval validates lead submissions before they reach the store.
//
// Check returns every problem it finds, in field order, so a form can show
// all messages at once instead of one per round trip.
package inputval

import (
	"regexp"
	"strings"
)

var (
	// Indian mobile numbers: ten digits, first digit 6-9.
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)

	// Intentionally loose local@domain.tld shape. Anything stricter rejects
	// real addresses; anything looser lets through strings with no domain.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Candidate is a raw submission as received, before normalization.
type Candidate struct {
	Name        string
	Phone       string
	Email       string
	State       string
	City        string
	InquiryType string
}

// Check runs every field check independently and returns the messages in a
// fixed order. An empty slice means the candidate is valid. At most one
// message is produced per field.
func Check(c Candidate) []string {
	var errs []string

	if name := strings.TrimSpace(c.Name); len(name) < 2 {
		errs = append(errs, "name must be at least 2 characters")
	}
	if !phoneRe.MatchString(strings.TrimSpace(c.Phone)) {
		errs = append(errs, "phone must be a valid 10-digit Indian mobile number")
	}
	if !emailRe.MatchString(strings.TrimSpace(c.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	if strings.TrimSpace(c.State) == "" {
		errs = append(errs, "state is required")
	}
	if strings.TrimSpace(c.City) == "" {
		errs = append(errs, "city is required")
	}

	return errs
}

// IsValidPhone reports whether s is an acceptable mobile number.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}

// IsValidEmail reports whether s has a local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}
