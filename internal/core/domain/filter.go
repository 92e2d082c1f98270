package domain

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
)

// FilterState restricts the derived product view. Empty category and
// brand sets impose no restriction; search text under three characters
// matches everything.
type FilterState struct {
	Search     string
	Categories []string
	Brands     []string
	PriceRange PriceRange
}

// PriceRange is inclusive on both ends. Min <= Max always.
type PriceRange struct {
	Min float64
	Max float64
}

const DefaultPriceCeiling = 5000

// DefaultFilterState imposes no restriction: empty search, no selected
// categories or brands, price range [0, 5000].
func DefaultFilterState() FilterState {
	return FilterState{
		PriceRange: PriceRange{Min: 0, Max: DefaultPriceCeiling},
	}
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}
