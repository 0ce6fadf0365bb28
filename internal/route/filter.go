package route

import (
	"strings"

	"worldsporta/internal/domain"
)

// FilterNews keeps posts in the category whose title contains query, ignoring case.
// Both conditions must hold; order is preserved. An empty category or All keeps every category.
func FilterNews(posts []domain.NewsPost, category domain.SportCategory, query string) []domain.NewsPost {
	q := strings.ToLower(query)
	out := make([]domain.NewsPost, 0, len(posts))
	for _, p := range posts {
		if !categoryMatches(category, p.Category) {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterProducts keeps products in the category, preserving order
func FilterProducts(products []domain.Product, category domain.SportCategory) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if categoryMatches(category, p.Category) {
			out = append(out, p)
		}
	}
	return out
}

func categoryMatches(filter, item domain.SportCategory) bool {
	if filter == "" {
		return true
	}
	return filter.Matches(item)
}
