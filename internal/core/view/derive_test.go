package view_test

import (
	"testing"

	"github.com/timekeepers/storefront/internal/core/domain"
	"github.com/timekeepers/storefront/internal/core/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Classic Chronograph", Brand: "Rolex", Category: "Luxury", Price: 1200, CreationDate: "2024-01-01"},
		{ID: 2, Name: "Sport Diver", Brand: "Omega", Category: "Sport", Price: 850, CreationDate: "2024-01-02"},
		{ID: 3, Name: "Edifice Racer", Brand: "Casio", Category: "Casual", Price: 300, CreationDate: "2024-03-15"},
		{ID: 4, Name: "Royal Oak", Brand: "Audemars Piguet", Category: "Luxury", Price: 4800, CreationDate: "2023-11-20"},
	}
}

func ids(ps []domain.Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestDerive(t *testing.T) {

	t.Run("DefaultsImposeNoRestriction", func(t *testing.T) {
		got := view.Derive(fixtures(), domain.DefaultFilterState(), domain.SortNone)
		assert.Len(t, got, len(fixtures()))
	})

	t.Run("EmptyProductSet", func(t *testing.T) {
		got := view.Derive(nil, domain.DefaultFilterState(), domain.SortPriceLow)
		assert.Empty(t, got)
	})

	t.Run("ShortSearchMatchesAll", func(t *testing.T) {
		fs := domain.DefaultFilterState()
		for _, term := range []string{"", "z", "zz", "  zq  "} {
			fs.Search = term
			got := view.Derive(fixtures(), fs, domain.SortNone)
			assert.Len(t, got, len(fixtures()), "search %q", term)
		}
	})

	t.Run("SearchCoversNameBrandCategory", func(t *testing.T) {
		fs := domain.DefaultFilterState()

		fs.Search = "diver"
		assert.Equal(t, []int{2}, ids(view.Derive(fixtures(), fs, domain.SortNone)))

		fs.Search = "OMEGA"
		assert.Equal(t, []int{2}, ids(view.Derive(fixtures(), fs, domain.SortNone)))

		fs.Search = "lux"
		assert.Equal(t, []int{1, 4}, ids(view.Derive(fixtures(), fs, domain.SortNone)))

		fs.Search = "nothing-matches-this"
		assert.Empty(t, view.Derive(fixtures(), fs, domain.SortNone))
	})

	t.Run("CategoryAndBrandSets", func(t *testing.T) {
		fs := domain.DefaultFilterState()
		fs.Categories = []string{"Luxury"}
		assert.Equal(t, []int{1, 4}, ids(view.Derive(fixtures(), fs, domain.SortNone)))

		fs.Brands = []string{"Rolex"}
		assert.Equal(t, []int{1}, ids(view.Derive(fixtures(), fs, domain.SortNone)))
	})

	t.Run("PriceRangeInclusive", func(t *testing.T) {
		fs := domain.DefaultFilterState()
		fs.PriceRange = domain.PriceRange{Min: 300, Max: 1200}

		got := view.Derive(fixtures(), fs, domain.SortNone)
		require.NotEmpty(t, got)
		for _, p := range got {
			assert.GreaterOrEqual(t, p.Price, fs.PriceRange.Min)
			assert.LessOrEqual(t, p.Price, fs.PriceRange.Max)
		}
		assert.Equal(t, []int{1, 2, 3}, ids(got))
	})

	t.Run("SortPriceLow", func(t *testing.T) {
		got := view.Derive(fixtures(), domain.DefaultFilterState(), domain.SortPriceLow)
		assert.Equal(t, []int{3, 2, 1, 4}, ids(got))
	})

	t.Run("SortPriceHigh", func(t *testing.T) {
		got := view.Derive(fixtures(), domain.DefaultFilterState(), domain.SortPriceHigh)
		assert.Equal(t, []int{4, 1, 2, 3}, ids(got))
	})

	t.Run("SortNewest", func(t *testing.T) {
		got := view.Derive(fixtures(), domain.DefaultFilterState(), domain.SortNewest)
		assert.Equal(t, []int{3, 2, 1, 4}, ids(got))
	})

	t.Run("UnrecognizedSortKeyPassesThrough", func(t *testing.T) {
		got := view.Derive(fixtures(), domain.DefaultFilterState(), domain.SortKey("rating"))
		assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		products := fixtures()
		view.Derive(products, domain.DefaultFilterState(), domain.SortPriceHigh)
		assert.Equal(t, []int{1, 2, 3, 4}, ids(products))
	})
}
