package utils

import "strings"

// FilterByQuery keeps, in their original order, the items where any of the given
// fields contains query case-insensitively. A blank query returns items unchanged.
func FilterByQuery[T any](items []T, query string, fields ...func(T) string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	needle := strings.ToLower(query)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// CompareFold orders two strings lexicographically after lowercasing.
func CompareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
