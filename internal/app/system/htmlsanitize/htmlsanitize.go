// Package htmlsanitize strips markup from submitted text fields.
//
// Every stored field in this service is plain text (names, cities, admin
// notes), so the strict policy applies: all tags and attributes are removed,
// only text content survives.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Plain removes all HTML from s and unescapes the surviving entities,
// returning plain text suitable for storage. Whitespace is trimmed.
func Plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
