package port

import (
	"context"

	"github.com/timekeepers/storefront/internal/core/domain"
)

// CatalogSource is the read-only remote product list. One call, no
// pagination, no auth.
type CatalogSource interface {
	FetchProducts(context.Context) ([]domain.RawProduct, error)
}

// CartSnapshots is the durable client-side storage slot holding the
// serialized cart line sequence.
type CartSnapshots interface {
	Save([]domain.CartLine) error
	Load() ([]domain.CartLine, error)
}

// OrderLinker produces opaque handoff URLs for the messaging boundary.
// Write-only: the core never parses a response from it.
type OrderLinker interface {
	OrderLink(lines []domain.CartLine, form domain.OrderForm) string
	QuickBuyLink(p domain.Product) string
}

type CatalogLoader interface {
	Load(context.Context) []domain.Product
}
