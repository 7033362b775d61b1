package postgres

import "strings"

// The legacy schema stores string lists comma-joined in a text column.
// These helpers keep the mapping in one place.

func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(joined, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	return items
}
