// Package cartfile persists the cart snapshot to a keyed client-side
// storage slot: a JSON file with a cookie-style expiry window and path
// scope.
package cartfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/timekeepers/storefront/internal/core/domain"
	"github.com/timekeepers/storefront/internal/core/port"
)

const DefaultTTL = 7 * 24 * time.Hour

type Snapshots struct {
	path string
	ttl  time.Duration
	now  func() time.Time
}

func New(path string, ttl time.Duration) *Snapshots {
	return &Snapshots{path: path, ttl: ttl, now: time.Now}
}

var _ port.CartSnapshots = (*Snapshots)(nil)

type (
	envelope struct {
		Expires time.Time `json:"expires"`
		Path    string    `json:"path"`
		Lines   []line    `json:"lines"`
	}

	// line mirrors the original cookie payload field-for-field.
	line struct {
		ID            int      `json:"id"`
		Name          string   `json:"name"`
		Price         float64  `json:"price"`
		OriginalPrice float64  `json:"originalPrice"`
		ImageURL      []string `json:"imageUrl"`
		FeaturedImage string   `json:"featuredImage"`
		Brand         string   `json:"brand"`
		Category      string   `json:"category"`
		Description   string   `json:"description"`
		Availability  bool     `json:"availability"`
		CreationDate  string   `json:"creationDate"`
		Quantity      int      `json:"quantity"`
	}
)

// Save writes the full snapshot, never a partial update. The slot
// expires a TTL from now, refreshed on every write.
func (s *Snapshots) Save(lines []domain.CartLine) error {
	const op = "Snapshots.Save"

	env := envelope{
		Expires: s.now().Add(s.ttl),
		Path:    "/",
		Lines:   make([]line, 0, len(lines)),
	}
	for _, l := range lines {
		env.Lines = append(env.Lines, toWire(l))
	}

	b, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Load reads the persisted snapshot verbatim. A missing or expired
// slot yields an empty cart, not an error.
func (s *Snapshots) Load() ([]domain.CartLine, error) {
	const op = "Snapshots.Load"

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.now().After(env.Expires) {
		_ = os.Remove(s.path)
		return nil, nil
	}

	lines := make([]domain.CartLine, 0, len(env.Lines))
	for _, l := range env.Lines {
		lines = append(lines, fromWire(l))
	}
	return lines, nil
}

func toWire(l domain.CartLine) line {
	return line{
		ID:            l.ID,
		Name:          l.Name,
		Price:         l.Price,
		OriginalPrice: l.OriginalPrice,
		ImageURL:      l.Images,
		FeaturedImage: l.FeaturedImage,
		Brand:         l.Brand,
		Category:      l.Category,
		Description:   l.Description,
		Availability:  l.Availability,
		CreationDate:  l.CreationDate,
		Quantity:      l.Quantity,
	}
}

func fromWire(l line) domain.CartLine {
	return domain.CartLine{
		Product: domain.Product{
			ID:            l.ID,
			Name:          l.Name,
			Price:         l.Price,
			OriginalPrice: l.OriginalPrice,
			Images:        l.ImageURL,
			FeaturedImage: l.FeaturedImage,
			Brand:         l.Brand,
			Category:      l.Category,
			Description:   l.Description,
			Availability:  l.Availability,
			CreationDate:  l.CreationDate,
		},
		Quantity: l.Quantity,
	}
}
