// Package paging slices lists into fixed-size pages.
package paging

import "fmt"

// DefaultPageSize is the number of items per page when none is configured.
const DefaultPageSize = 5

// Page is one slice of a list.
type Page[T any] struct {
	Items  []T
	Number int // 1-based, already clamped
	Total  int // at least 1
}

// Paginate returns page number of items. A non-positive size falls back to
// DefaultPageSize. The page number is clamped into [1, Total], and an empty
// list still has one (empty) page. items is never modified.
func Paginate[T any](items []T, size, number int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := (len(items) + size - 1) / size
	if total < 1 {
		total = 1
	}
	number = max(1, min(number, total))

	start := (number - 1) * size
	end := min(start+size, len(items))
	if start > end {
		start = end
	}
	return Page[T]{
		Items:  items[start:end:end],
		Number: number,
		Total:  total,
	}
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.Total }

// Paged reports whether page controls should be shown at all.
func (p Page[T]) Paged() bool { return p.Total > 1 }

// Indicator renders the "<number>/<total>" page label.
func (p Page[T]) Indicator() string {
	return fmt.Sprintf("%d/%d", p.Number, p.Total)
}
