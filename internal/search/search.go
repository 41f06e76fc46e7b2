// Package search implements the list-page search box: a case-insensitive
// substring match over a fixed set of fields per record.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Searchable records expose the fields the search box matches against.
type Searchable interface {
	SearchFields() []string
}

// Normalize case-folds s so comparisons ignore case in any script.
// A Caser is stateful, so each call gets its own.
func Normalize(s string) string {
	return cases.Fold().String(s)
}

// Matches reports whether any field contains query, ignoring case.
// The empty query matches everything.
func Matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := Normalize(query)
	for _, f := range fields {
		if strings.Contains(Normalize(f), q) {
			return true
		}
	}
	return false
}

// Filter returns the records whose fields contain query, keeping their
// original order. The empty query returns items unchanged.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(query, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}

// FilterSearchable is Filter over records implementing Searchable.
func FilterSearchable[T Searchable](items []T, query string) []T {
	return Filter(items, query, func(it T) []string { return it.SearchFields() })
}
