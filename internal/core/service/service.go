// Package service composes the storefront core into the single
// operation surface a UI host calls. Constructed once at startup and
// passed by handle to whoever needs it; no teardown.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/timekeepers/storefront/internal/core/cart"
	"github.com/timekeepers/storefront/internal/core/catalog"
	"github.com/timekeepers/storefront/internal/core/domain"
	"github.com/timekeepers/storefront/internal/core/port"
	"github.com/timekeepers/storefront/internal/core/view"
)

type Shop struct {
	repo   *catalog.Repository
	cart   *cart.Store
	reveal *view.Reveal
	linker port.OrderLinker

	mu     sync.RWMutex
	filter domain.FilterState
	sortBy domain.SortKey
}

func New(
	repo *catalog.Repository,
	cartStore *cart.Store,
	reveal *view.Reveal,
	linker port.OrderLinker,
) *Shop {
	return &Shop{
		repo:   repo,
		cart:   cartStore,
		reveal: reveal,
		linker: linker,
		filter: domain.DefaultFilterState(),
		sortBy: domain.SortNewest,
	}
}

// Load fills the catalog, falling back to the built-in sample set on
// any source failure. Never returns an error.
func (s *Shop) Load(ctx context.Context) {
	s.repo.Load(ctx)
}

func (s *Shop) Products() []domain.Product {
	return s.repo.Products()
}

// Derived recomputes the filtered, sorted view from current state.
func (s *Shop) Derived() []domain.Product {
	s.mu.RLock()
	fs, sortBy := s.filter, s.sortBy
	s.mu.RUnlock()
	return view.Derive(s.repo.Products(), fs, sortBy)
}

// Visible returns the derived view truncated to the reveal cursor.
func (s *Shop) Visible() []domain.Product {
	derived := s.Derived()
	return derived[:s.reveal.Visible(len(derived))]
}

func (s *Shop) FilterState() domain.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *Shop) SetFilter(fs domain.FilterState) error {
	if fs.PriceRange.Min > fs.PriceRange.Max {
		return fmt.Errorf(
			"invalid price range [%v, %v]",
			fs.PriceRange.Min, fs.PriceRange.Max,
		)
	}
	s.mu.Lock()
	s.filter = fs
	s.mu.Unlock()
	return nil
}

func (s *Shop) ResetFilters() {
	s.mu.Lock()
	s.filter = domain.DefaultFilterState()
	s.mu.Unlock()
}

func (s *Shop) SortBy() domain.SortKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortBy
}

func (s *Shop) SetSortBy(k domain.SortKey) {
	s.mu.Lock()
	s.sortBy = k
	s.mu.Unlock()
}

func (s *Shop) LoadMore(ctx context.Context) bool {
	return s.reveal.LoadMore(ctx)
}

func (s *Shop) HasMore() bool {
	return s.reveal.HasMore(len(s.Derived()))
}

func (s *Shop) SetContinuous(v bool) {
	s.reveal.SetContinuous(v)
}

func (s *Shop) Scrolled(ctx context.Context, distanceFromEnd float64) bool {
	return s.reveal.Scrolled(ctx, distanceFromEnd, len(s.Derived()))
}

func (s *Shop) AddToCart(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.cart.Add(p, qty)
}

func (s *Shop) UpdateCartQuantity(id, qty int) {
	s.cart.UpdateQuantity(id, qty)
}

func (s *Shop) RemoveFromCart(id int) {
	s.cart.Remove(id)
}

func (s *Shop) ClearCart() {
	s.cart.Clear()
}

func (s *Shop) CartLines() []domain.CartLine {
	return s.cart.Lines()
}

func (s *Shop) Subtotal() float64 {
	return s.cart.Subtotal()
}

// Checkout validates the customer form against the current cart and
// produces the opaque order handoff URL. Validation failures are
// user-visible messages, not system faults.
func (s *Shop) Checkout(form domain.OrderForm) (string, error) {
	const op = "Shop.Checkout"

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return "", fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}
	if err := form.Validate(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return s.linker.OrderLink(lines, form), nil
}

// QuickBuy produces a single-item inquiry URL.
func (s *Shop) QuickBuy(id int) (string, error) {
	const op = "Shop.QuickBuy"

	for _, p := range s.repo.Products() {
		if p.ID == id {
			return s.linker.QuickBuyLink(p), nil
		}
	}
	return "", fmt.Errorf("%s: product %d not found", op, id)
}
