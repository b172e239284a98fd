// Package pagination holds the page/limit arithmetic and the list envelope
// shared by every paginated endpoint.
package pagination

import "strconv"

const (
	DefaultPage = 1

	// DefaultLimit applies to projects and activity.
	DefaultLimit = 20
	// LargeLimit applies to tasks and users.
	LargeLimit = 50
)

// Params is a requested page. Page is not bounded below.
type Params struct {
	Page  int
	Limit int
}

// FromQuery parses raw query values. A missing or malformed page falls back to
// DefaultPage; a missing, malformed or non-positive limit falls back to defaultLimit.
func FromQuery(page, limit string, defaultLimit int) Params {
	p := Params{Page: DefaultPage, Limit: defaultLimit}
	if n, err := strconv.Atoi(page); err == nil {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = n
	}
	return p
}

// Skip is the number of rows preceding the page.
func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total / limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}

// Meta describes where a page sits in the full result.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Page is the list envelope.
type Page[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// New wraps items into an envelope. Data is never nil.
func New[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return Page[T]{
		Data: items,
		Pagination: Meta{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      total,
			TotalPages: TotalPages(total, p.Limit),
		},
	}
}

// Map converts the items of a page, keeping its metadata.
func Map[T, U any](page Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(page.Data))
	for i, item := range page.Data {
		out[i] = fn(item)
	}
	return Page[U]{Data: out, Pagination: page.Pagination}
}
