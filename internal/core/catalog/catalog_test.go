package catalog_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/timekeepers/storefront/internal/core/catalog"
	"github.com/timekeepers/storefront/internal/core/domain"
	"github.com/timekeepers/storefront/internal/core/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) FetchProducts(
	ctx context.Context,
) ([]domain.RawProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawProduct), args.Error(1)
}

func newRepository(source *MockCatalogSource) *catalog.Repository {
	return catalog.NewRepository(
		source, normalize.BrandRules(), normalize.CategoryRules(),
	)
}

func TestRepositoryLoad(t *testing.T) {

	t.Run("MapsRawRecord", func(t *testing.T) {
		source := new(MockCatalogSource)
		source.On("FetchProducts", t.Context()).Return([]domain.RawProduct{{
			ProductID:            5,
			ProductName:          "Speedmaster",
			ProductOriginalPrice: 900,
			ProductBrand:         "omega",
			CatName:              "sport",
			Availability:         1,
			ProductDateCreation:  "2024-02-01",
			ImageURL:             `["a.jpg"]`,
			FeaturedImg:          "a.jpg",
		}}, nil)

		ps := newRepository(source).Load(t.Context())
		require.Len(t, ps, 1)

		p := ps[0]
		assert.Equal(t, 5, p.ID)
		assert.Equal(t, "Speedmaster", p.Name)
		assert.Equal(t, "Omega", p.Brand)
		assert.Equal(t, "Sport", p.Category)
		assert.Equal(t, float64(900), p.Price)
		assert.Equal(t, float64(900), p.OriginalPrice)
		assert.Equal(t, []string{"a.jpg"}, p.Images)
		assert.True(t, p.Availability)
		assert.Equal(t, "No description available.", p.Description)
	})

	t.Run("UnparseableImageListFallsBackToFeatured", func(t *testing.T) {
		source := new(MockCatalogSource)
		source.On("FetchProducts", t.Context()).Return([]domain.RawProduct{{
			ProductID:   7,
			ImageURL:    "not-json",
			FeaturedImg: "featured.jpg",
		}}, nil)

		ps := newRepository(source).Load(t.Context())
		require.Len(t, ps, 1)
		assert.Equal(t, []string{"featured.jpg"}, ps[0].Images)
	})

	t.Run("AvailabilityRequiresExactSentinel", func(t *testing.T) {
		source := new(MockCatalogSource)
		source.On("FetchProducts", t.Context()).Return([]domain.RawProduct{
			{ProductID: 1, Availability: 1},
			{ProductID: 2, Availability: 2},
			{ProductID: 3, Availability: 0},
		}, nil)

		ps := newRepository(source).Load(t.Context())
		require.Len(t, ps, 3)
		assert.True(t, ps[0].Availability)
		assert.False(t, ps[1].Availability)
		assert.False(t, ps[2].Availability)
	})

	t.Run("FetchFailureSubstitutesFallbackCatalog", func(t *testing.T) {
		source := new(MockCatalogSource)
		source.On("FetchProducts", t.Context()).
			Return(nil, errors.New("connection refused"))

		repo := newRepository(source)
		ps := repo.Load(t.Context())

		assert.Equal(t, catalog.FallbackProducts(), ps)
		assert.Equal(t, catalog.FallbackProducts(), repo.Products())
	})

	t.Run("ReplacesSetWholesale", func(t *testing.T) {
		source := new(MockCatalogSource)
		source.On("FetchProducts", t.Context()).Return([]domain.RawProduct{
			{ProductID: 1}, {ProductID: 2},
		}, nil).Once()
		source.On("FetchProducts", t.Context()).Return([]domain.RawProduct{
			{ProductID: 3},
		}, nil).Once()

		repo := newRepository(source)
		repo.Load(t.Context())
		require.Len(t, repo.Products(), 2)

		repo.Load(t.Context())
		require.Len(t, repo.Products(), 1)
		assert.Equal(t, 3, repo.Products()[0].ID)
	})

	t.Run("ConcurrentLoadsCoalesce", func(t *testing.T) {
		var calls atomic.Int32
		started := make(chan struct{})
		release := make(chan struct{})

		source := sourceFunc(func(context.Context) ([]domain.RawProduct, error) {
			calls.Add(1)
			close(started)
			<-release
			return []domain.RawProduct{{ProductID: 1}}, nil
		})

		repo := catalog.NewRepository(
			source, normalize.BrandRules(), normalize.CategoryRules(),
		)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			repo.Load(context.Background())
		}()
		<-started
		go func() {
			defer wg.Done()
			repo.Load(context.Background())
		}()

		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}

type sourceFunc func(context.Context) ([]domain.RawProduct, error)

func (f sourceFunc) FetchProducts(
	ctx context.Context,
) ([]domain.RawProduct, error) {
	return f(ctx)
}
