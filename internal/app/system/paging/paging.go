// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size used when the request doesn't ask for one.
// MaxLimit caps what a caller may request in one page. Both can be adjusted
// once at startup via Configure.
var (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Configure overrides the default and maximum page sizes. Non-positive
// values leave the current setting in place. Called once from the startup
// hook, before the handler serves traffic.
func Configure(def, max int) {
	if def > 0 {
		DefaultLimit = def
	}
	if max > 0 {
		MaxLimit = max
	}
	if DefaultLimit > MaxLimit {
		DefaultLimit = MaxLimit
	}
}

// Page holds a sanitized page request.
type Page struct {
	Page  int
	Limit int
}

// Skip returns the number of records to skip for this page, as int64 for
// the store's Find options.
func (p Page) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Limit64 returns the page size as int64 for the store's Find options.
func (p Page) Limit64() int64 {
	return int64(p.Limit)
}

// Parse extracts "page" and "limit" query parameters. Missing or invalid
// values fall back to page 1 and DefaultLimit; limit is clamped to MaxLimit.
func Parse(r *http.Request) Page {
	return Sanitize(atoiDefault(query.Get(r, "page"), 1), atoiDefault(query.Get(r, "limit"), DefaultLimit))
}

// Sanitize clamps raw page/limit values into a usable Page.
func Sanitize(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// Meta is the pagination summary returned alongside a page of results.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewMeta builds a Meta for the given page request and total match count.
// Pages is ceil(total/limit); zero results mean zero pages.
func NewMeta(p Page, total int64) Meta {
	pages := (total + int64(p.Limit) - 1) / int64(p.Limit)
	return Meta{Page: p.Page, Limit: p.Limit, Total: total, Pages: pages}
}
