// Package normalize holds field normalizers applied before anything is
// validated or stored. Keep these pure: trimming, case folding, whitespace
// collapsing only.
package normalize

import "strings"

// Email lowercases and trims an email address. The empty string stays empty.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and collapses internal runs of
// whitespace to single spaces. Case is preserved.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Phone strips surrounding whitespace. Digits are left as entered so the
// validator sees exactly what will be stored.
func Phone(s string) string {
	return strings.TrimSpace(s)
}

// Place trims a free-form state or city value.
func Place(s string) string {
	return strings.TrimSpace(s)
}
