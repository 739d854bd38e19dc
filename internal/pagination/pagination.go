// Package pagination turns untrusted page/limit query input into safe
// limit/offset directives and builds the listing metadata returned to clients.
// I keep coercion and clamping separate so each policy stays testable on its own.
package pagination

import "strconv"

const (
	// DefaultPage is used when the page parameter is absent or unusable.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is absent or unusable.
	DefaultLimit = 20
	// MaxLimit caps the page size; larger requests are reduced, never rejected.
	MaxLimit = 100
)

// Directive is the validated pagination triple handed to the persistence layer.
// Skip is always (Page-1)*Limit, computed after defaulting and clamping.
type Directive struct {
	Page  int
	Limit int
	Skip  int
}

// Meta is the listing metadata rendered under the response envelope's meta key.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// Normalize coerces raw query-string values and applies the clamping policy.
// Invalid input is corrected, never rejected: pagination is advisory UX input,
// so we fail open with defaults instead of surfacing a 4xx.
func Normalize(page, limit string) Directive {
	return Clamp(atoiOr(page, 0), atoiOr(limit, 0))
}

// Clamp applies the bounding policy to already-numeric values:
// page < 1 defaults to 1, limit < 1 defaults to 20, limit > 100 is cut to 100.
// Clamping an already-clamped directive is a no-op.
func Clamp(page, limit int) Directive {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Directive{Page: page, Limit: limit, Skip: (page - 1) * limit}
}

// NewMeta derives listing metadata from a total count and the directive that
// produced it. TotalPages is ceil(total/limit) floored at 1, so an empty
// result set still reports a single (empty) page. A non-positive limit is
// treated as 1 rather than letting a division blow up on a bad caller.
func NewMeta(total, page, limit int) Meta {
	if limit < 1 {
		limit = 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return Meta{Total: total, Page: page, Limit: limit, TotalPages: pages}
}

// atoiOr parses s as a base-10 integer, falling back when absent or malformed.
func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
