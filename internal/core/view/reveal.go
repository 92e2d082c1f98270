package view

import (
	"context"
	"sync"
	"time"
)

const (
	// InitialCount and PageSize are fixed by the storefront design.
	InitialCount = 6
	PageSize     = 6

	// ScrollThreshold is the distance from the end of content, in
	// layout units, within which continuous mode auto-advances.
	ScrollThreshold = 500
)

// Reveal maintains the visible-count cursor into the derived view.
// At most one page load is in flight; calls arriving while a load is
// pending are dropped, not queued.
type Reveal struct {
	mu         sync.Mutex
	cursor     int
	pageSize   int
	delay      time.Duration
	loading    bool
	continuous bool
}

func NewReveal(delay time.Duration) *Reveal {
	return &Reveal{
		cursor:   InitialCount,
		pageSize: PageSize,
		delay:    delay,
	}
}

// Visible clamps the cursor to the derived view's length.
func (r *Reveal) Visible(total int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return min(r.cursor, total)
}

// HasMore reports whether a manual "load more" control should show.
func (r *Reveal) HasMore(total int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor < total
}

func (r *Reveal) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// LoadMore advances the cursor by one page after the configured delay.
// Returns false when the call is dropped: either a load is already in
// flight or the context is cancelled during the delay (the stale
// result is discarded, the cursor does not move).
func (r *Reveal) LoadMore(ctx context.Context) bool {
	r.mu.Lock()
	if r.loading {
		r.mu.Unlock()
		return false
	}
	r.loading = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.loading = false
		r.mu.Unlock()
	}()

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	} else if ctx.Err() != nil {
		return false
	}

	r.mu.Lock()
	r.cursor += r.pageSize
	r.mu.Unlock()
	return true
}

// SetContinuous switches between manual and continuous reveal. Takes
// effect immediately for subsequent reveal decisions; the cursor is
// not reset.
func (r *Reveal) SetContinuous(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.continuous = v
}

func (r *Reveal) Continuous() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.continuous
}

// Scrolled feeds a scroll position to the reveal: in continuous mode,
// being within ScrollThreshold of the end of content triggers a page
// load unless one is already pending or everything is visible.
func (r *Reveal) Scrolled(ctx context.Context, distanceFromEnd float64, total int) bool {
	r.mu.Lock()
	trigger := r.continuous &&
		distanceFromEnd <= ScrollThreshold &&
		!r.loading &&
		r.cursor < total
	r.mu.Unlock()

	if !trigger {
		return false
	}
	return r.LoadMore(ctx)
}
