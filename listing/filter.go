// Package listing holds the list-screen helpers: free-text filtering and
// fixed-size pagination.
package listing

import "strings"

// Filter returns the items where query, case-folded, is a substring of at
// least one of the values returned by fields. A blank query returns items
// unchanged. Relative order is preserved.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
