// Package httpsource fetches the raw product list from the remote
// catalog endpoint.
package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/timekeepers/storefront/internal/core/domain"
	"github.com/timekeepers/storefront/internal/core/port"
	"github.com/timekeepers/storefront/pkg/retry"
)

type Source struct {
	endpoint string
	client   *http.Client
	attempts int
}

// New builds a catalog source with a per-request timeout so a hung
// fetch cannot indefinitely defer the fallback path.
func New(endpoint string, timeout time.Duration, attempts int) Source {
	return Source{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		attempts: attempts,
	}
}

var _ port.CatalogSource = Source{}

// FetchProducts performs the single read-only catalog call, retried a
// bounded number of times with backoff.
func (s Source) FetchProducts(ctx context.Context) ([]domain.RawProduct, error) {
	const op = "Source.FetchProducts"

	cfg := retry.RetryConfig{MaxAttempts: s.attempts}
	raw, err := retry.DoWithResult(ctx, cfg, func() ([]domain.RawProduct, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return raw, nil
}

func (s Source) fetch(ctx context.Context) ([]domain.RawProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var raw []domain.RawProduct
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
