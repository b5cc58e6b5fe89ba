package catalog

import (
	"strings"

	"github.com/lapescados/storefront/internal/domain"
)

// Filter applies the category and search predicates, ANDed. Category matches
// exactly unless it is empty or "todos"; the search term matches
// case-insensitively against name or description. The result preserves
// catalog order.
func Filter(products []domain.Product, category, search string) []domain.Product {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, category) {
			continue
		}
		if !matchesSearch(p, search) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

func matchesCategory(p domain.Product, category string) bool {
	return category == "" || category == CategoryAll || p.Category == category
}

func matchesSearch(p domain.Product, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}
