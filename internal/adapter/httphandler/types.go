package httphandler

import "github.com/timekeepers/storefront/internal/core/domain"

type (
	Product struct {
		ID            int      `json:"id"`
		Name          string   `json:"name"`
		Brand         string   `json:"brand"`
		Category      string   `json:"category"`
		Price         float64  `json:"price"`
		OriginalPrice float64  `json:"originalPrice"`
		ImageURL      []string `json:"imageUrl"`
		FeaturedImage string   `json:"featuredImage"`
		Description   string   `json:"description"`
		Availability  bool     `json:"availability"`
		CreationDate  string   `json:"creationDate"`
	}

	CartLine struct {
		Product
		Quantity  int     `json:"quantity"`
		LineTotal float64 `json:"lineTotal"`
	}

	FilterState struct {
		Search     string   `json:"search"`
		Categories []string `json:"categories"`
		Brands     []string `json:"brands"`
		PriceMin   float64  `json:"priceMin"`
		PriceMax   float64  `json:"priceMax"`
	}

	ProductsPage struct {
		Products []Product `json:"products"`
		Total    int       `json:"total"`
		HasMore  bool      `json:"hasMore"`
	}

	Cart struct {
		Lines    []CartLine `json:"lines"`
		Subtotal float64    `json:"subtotal"`
	}

	AddItem struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	Quantity struct {
		Quantity int `json:"quantity"`
	}

	Sort struct {
		SortBy string `json:"sortBy"`
	}

	RevealMode struct {
		Continuous bool `json:"continuous"`
	}

	Scroll struct {
		DistanceFromEnd float64 `json:"distanceFromEnd"`
	}

	CheckoutForm struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Email   string `json:"email"`
	}

	Handoff struct {
		URL string `json:"url"`
	}
)

func toWireProduct(p domain.Product) Product {
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		ImageURL:      p.Images,
		FeaturedImage: p.FeaturedImage,
		Description:   p.Description,
		Availability:  p.Availability,
		CreationDate:  p.CreationDate,
	}
}

func toDomainProduct(p Product) domain.Product {
	return domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Images:        p.ImageURL,
		FeaturedImage: p.FeaturedImage,
		Description:   p.Description,
		Availability:  p.Availability,
		CreationDate:  p.CreationDate,
	}
}

func toWireLine(l domain.CartLine) CartLine {
	return CartLine{
		Product:   toWireProduct(l.Product),
		Quantity:  l.Quantity,
		LineTotal: l.LineTotal(),
	}
}
