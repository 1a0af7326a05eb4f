// Package page windows an ordered result list into fixed-size pages.
package page

// Window is one page of results plus the numbers the caller needs to render
// navigation.
type Window[T any] struct {
	Items      []T
	Page       int // requested page after clamping
	TotalPages int // always >= 1
	TotalItems int
}

// Slice cuts the requested page out of items. pageSize must be positive.
// The requested page is clamped into [0, totalPages-1]; an empty input
// yields one empty page, which callers must render as a distinct
// "nothing found" view rather than page 1 of content.
func Slice[T any](items []T, pageSize, requested int) Window[T] {
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	p := requested
	if p < 0 {
		p = 0
	}
	if p > totalPages-1 {
		p = totalPages - 1
	}

	start := p * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Window[T]{
		Items:      items[start:end],
		Page:       p,
		TotalPages: totalPages,
		TotalItems: len(items),
	}
}
