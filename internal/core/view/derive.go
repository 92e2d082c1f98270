// Package view derives the filtered, sorted, incrementally revealed
// product view.
package view

import (
	"sort"
	"strings"

	"github.com/timekeepers/storefront/internal/core/domain"
)

// Live search kicks in at three characters; shorter terms match all.
const minSearchLen = 3

// Derive returns the filtered and sorted view of products. Pure: the
// input slice is never mutated, callers re-invoke it after each state
// change. Sorting is stable; an unrecognized sort key passes the
// filtered order through untouched.
func Derive(
	products []domain.Product, fs domain.FilterState, sortBy domain.SortKey,
) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, fs) {
			result = append(result, p)
		}
	}

	switch sortBy {
	case domain.SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case domain.SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case domain.SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt().After(result[j].CreatedAt())
		})
	}
	return result
}

func matches(p domain.Product, fs domain.FilterState) bool {
	term := strings.ToLower(strings.TrimSpace(fs.Search))
	matchesSearch := len(term) < minSearchLen ||
		strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) ||
		strings.Contains(strings.ToLower(p.Category), term)

	return matchesSearch &&
		memberOrEmpty(fs.Categories, p.Category) &&
		memberOrEmpty(fs.Brands, p.Brand) &&
		fs.PriceRange.Contains(p.Price)
}

func memberOrEmpty(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
