package domain

import "time"

type (
	// Product is one catalog entry. Products are constructed once per
	// fetch cycle and never patched in place: a refetch replaces the
	// whole set.
	Product struct {
		ID            int
		Name          string
		Brand         string
		Category      string
		Price         float64
		OriginalPrice float64
		Images        []string
		FeaturedImage string
		Description   string
		Availability  bool
		CreationDate  string
	}

	// RawProduct is the wire shape of one record from the catalog
	// source. ImageURL carries a JSON-encoded array of URLs; when it
	// does not parse, FeaturedImg serves as a single-image fallback.
	RawProduct struct {
		ProductID            int     `json:"productId"`
		ProductName          string  `json:"productName"`
		ProductOriginalPrice float64 `json:"productOriginalPrice"`
		ProductBrand         string  `json:"productBrand"`
		CatName              string  `json:"catName"`
		ProductDescription   string  `json:"productDescription"`
		Availability         int     `json:"availability"`
		ProductDateCreation  string  `json:"productDateCreation"`
		ImageURL             string  `json:"imageUrl"`
		FeaturedImg          string  `json:"featuredimg"`
	}
)

// CreatedAt parses the record's creation date, used only for "newest"
// ordering. Unparseable dates collapse to the zero time and sort last.
func (p Product) CreatedAt() time.Time {
	for _, layout := range []string{time.DateOnly, time.RFC3339, time.DateTime} {
		if t, err := time.Parse(layout, p.CreationDate); err == nil {
			return t
		}
	}
	return time.Time{}
}
