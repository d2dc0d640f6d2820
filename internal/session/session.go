// Package session owns the "prices already refreshed" gate. Refresh
// cadence is a caller concern: the pricing service may be invoked any
// number of times, but a session refreshes at most once until something
// marks it stale (typically a portfolio mutation or an explicit refresh
// request from the frontend).
package session

import (
	"context"
	"sync"
)

// Session tracks whether quotes have been refreshed for the current
// logical session.
type Session struct {
	mu          sync.Mutex
	pricesFresh bool
}

// New creates a stale session; the first EnsureFresh call will refresh.
func New() *Session {
	return &Session{}
}

// EnsureFresh runs refresh at most once until the session is marked stale.
// A refresh that fails leaves the session stale so the next call retries.
func (s *Session) EnsureFresh(ctx context.Context, refresh func(context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pricesFresh {
		return nil
	}

	if err := refresh(ctx); err != nil {
		return err
	}

	s.pricesFresh = true
	return nil
}

// MarkStale forces the next EnsureFresh call to refresh.
func (s *Session) MarkStale() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricesFresh = false
}

// MarkFresh records that quotes were refreshed outside EnsureFresh
// (e.g. by the scheduled refresh job).
func (s *Session) MarkFresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricesFresh = true
}

// Fresh reports whether quotes have been refreshed this session.
func (s *Session) Fresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pricesFresh
}
