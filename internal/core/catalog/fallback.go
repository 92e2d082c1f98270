package catalog

import "github.com/timekeepers/storefront/internal/core/domain"

// FallbackProducts is the built-in sample catalog served when the
// remote source fails. Kept small: enough for the storefront to stay
// browsable in demo mode.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			Name:          "Classic Chronograph",
			Price:         1200,
			OriginalPrice: 1500,
			Images:        []string{"https://picsum.photos/800/800?random=1"},
			FeaturedImage: "https://picsum.photos/800/800?random=1",
			Brand:         "Rolex",
			Category:      "Luxury",
			Description:   "A timeless classic for the modern gentleman.",
			Availability:  true,
			CreationDate:  "2024-01-01",
		},
		{
			ID:            2,
			Name:          "Sport Diver",
			Price:         850,
			OriginalPrice: 1000,
			Images:        []string{"https://picsum.photos/800/800?random=2"},
			FeaturedImage: "https://picsum.photos/800/800?random=2",
			Brand:         "Omega",
			Category:      "Sport",
			Description:   "Built for the deep, designed for the desk.",
			Availability:  true,
			CreationDate:  "2024-01-02",
		},
	}
}
