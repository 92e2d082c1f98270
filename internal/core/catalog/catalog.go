// Package catalog owns the raw-to-domain product mapping and the
// authoritative in-memory product set.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/timekeepers/storefront/internal/core/domain"
	"github.com/timekeepers/storefront/internal/core/normalize"
	"github.com/timekeepers/storefront/internal/core/port"
	"golang.org/x/sync/singleflight"
)

// availableSentinel is the exact truthy value of the raw availability
// field; merely truthy-like values do not count.
const availableSentinel = 1

const noDescription = "No description available."

// Repository holds the product set, replaced wholesale on each load.
type Repository struct {
	source        port.CatalogSource
	brandRules    normalize.RuleTable
	categoryRules normalize.RuleTable

	group singleflight.Group

	mu       sync.RWMutex
	products []domain.Product
}

func NewRepository(
	source port.CatalogSource,
	brandRules, categoryRules normalize.RuleTable,
) *Repository {
	return &Repository{
		source:        source,
		brandRules:    brandRules,
		categoryRules: categoryRules,
	}
}

var _ port.CatalogLoader = (*Repository)(nil)

// Load fetches and maps the full product set. Any network, parse or
// shape error substitutes the built-in fallback catalog: from the
// caller's perspective Load always succeeds. Concurrent calls coalesce
// into a single fetch.
func (r *Repository) Load(ctx context.Context) []domain.Product {
	const op = "Repository.Load"
	log := slog.With("op", op)

	v, _, _ := r.group.Do("load", func() (any, error) {
		raw, err := r.source.FetchProducts(ctx)
		if err != nil {
			log.Warn("catalog fetch failed, using fallback catalog", "err", err)
			return FallbackProducts(), nil
		}

		ps := make([]domain.Product, 0, len(raw))
		for _, rec := range raw {
			ps = append(ps, r.mapRecord(rec))
		}
		log.Info("catalog loaded", "nProducts", len(ps))
		return ps, nil
	})

	ps := v.([]domain.Product)
	r.mu.Lock()
	r.products = ps
	r.mu.Unlock()
	return ps
}

// Products returns the current product set.
func (r *Repository) Products() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.products
}

func (r *Repository) mapRecord(rec domain.RawProduct) domain.Product {
	var images []string
	if err := json.Unmarshal([]byte(rec.ImageURL), &images); err != nil {
		images = []string{rec.FeaturedImg}
	}

	description := rec.ProductDescription
	if description == "" {
		description = noDescription
	}

	// No separate discounted-price field exists yet, so the original
	// price serves as both the current and the strikethrough price.
	return domain.Product{
		ID:            rec.ProductID,
		Name:          rec.ProductName,
		Price:         rec.ProductOriginalPrice,
		OriginalPrice: rec.ProductOriginalPrice,
		Images:        images,
		FeaturedImage: rec.FeaturedImg,
		Brand:         normalize.Normalize(rec.ProductBrand, r.brandRules),
		Category:      normalize.Normalize(rec.CatName, r.categoryRules),
		Description:   description,
		Availability:  rec.Availability == availableSentinel,
		CreationDate:  rec.ProductDateCreation,
	}
}
