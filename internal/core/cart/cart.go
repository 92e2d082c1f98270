// Package cart holds the shopping cart: one line per product id, with
// quantity-merge semantics and a persisted snapshot after every
// mutation.
package cart

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/timekeepers/storefront/internal/core/domain"
	"github.com/timekeepers/storefront/internal/core/port"
)

// Store keeps cart lines in insertion order. The quantity
// read-modify-write is a critical section, guarded per instance.
type Store struct {
	mu        sync.Mutex
	lines     []domain.CartLine
	snapshots port.CartSnapshots
}

// NewStore rehydrates an existing persisted snapshot verbatim: a
// persisted line may reference a product id no longer in the catalog,
// which is tolerated, not purged.
func NewStore(snapshots port.CartSnapshots) *Store {
	const op = "cart.NewStore"

	s := &Store{snapshots: snapshots}
	lines, err := s.snapshots.Load()
	if err != nil {
		slog.With("op", op).Warn("failed to load cart snapshot", "err", err)
		return s
	}
	s.lines = lines
	return s
}

// Add inserts a line with the given quantity, or increments the
// existing line's quantity when the product is already carted. qty
// defaults to 1 per call site convention; no upper bound is enforced.
func (s *Store) Add(p domain.Product, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity += qty
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{Product: p, Quantity: qty})
	s.persist()
}

// UpdateQuantity sets a line's quantity to exactly qty. A qty below 1
// removes the line instead. Unknown ids are a no-op outside the
// removal branch.
func (s *Store) UpdateQuantity(id, qty int) {
	if qty < 1 {
		s.Remove(id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = qty
			s.persist()
			return
		}
	}
}

// Remove deletes the line if present; no-op otherwise.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.lines)
	s.lines = slices.DeleteFunc(s.lines, func(l domain.CartLine) bool {
		return l.ID == id
	})
	if len(s.lines) != n {
		s.persist()
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist()
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lines)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Subtotal is a derived read, never stored state.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.LineTotal()
	}
	return total
}

// persist writes the full snapshot. A storage failure degrades to an
// in-memory cart rather than failing the mutation. Callers hold s.mu.
func (s *Store) persist() {
	const op = "Store.persist"

	if err := s.snapshots.Save(s.lines); err != nil {
		slog.With("op", op).Warn("failed to persist cart snapshot", "err", err)
	}
}
