// Package session orchestrates the lifecycle of the single
// outstanding catalog query.
package session

import (
	"context"
	"log"
	"sync"
	"unicode/utf8"

	"tunegrip/internal/domain"
	"tunegrip/internal/eventbus"
	"tunegrip/internal/format"
)

// Provider answers catalog queries. Cancellation travels through the
// context; a cancelled call should return promptly, but the session
// never relies on that (see the generation check below).
type Provider interface {
	Search(ctx context.Context, term string) ([]domain.Track, error)
}

// request is the handle for one outstanding query
type request struct {
	term   string
	gen    uint64
	cancel context.CancelFunc
	status domain.RequestStatus
}

// Session owns at most one pending request at a time. Starting a new
// search cancels the previous pending request; outcomes arriving for
// superseded requests are discarded.
type Session struct {
	mu       sync.Mutex
	provider Provider
	bus      eventbus.EventBus

	minTermLength int
	maxResults    int

	gen     uint64
	current *request
}

// New creates a search session publishing its outcomes on bus
func New(provider Provider, bus eventbus.EventBus, minTermLength, maxResults int) *Session {
	return &Session{
		provider:      provider,
		bus:           bus,
		minTermLength: minTermLength,
		maxResults:    maxResults,
	}
}

// Start begins a search for term. Terms shorter than the configured
// minimum never reach the provider: any pending request is cancelled
// and a cleared signal is published instead.
//
// Events are published while holding the session lock so their order
// on the bus always matches the order of state transitions.
func (s *Session) Start(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelCurrentLocked()

	if utf8.RuneCountInString(term) < s.minTermLength {
		s.bus.Publish(eventbus.SearchClearedEvent{})
		return
	}

	s.gen++
	ctx, cancel := context.WithCancel(context.Background())
	req := &request{
		term:   term,
		gen:    s.gen,
		cancel: cancel,
		status: domain.RequestPending,
	}
	s.current = req

	s.bus.Publish(eventbus.SearchStartedEvent{Term: term})
	go s.run(ctx, req)
}

// Pending reports whether a request is outstanding, and for which term
func (s *Session) Pending() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return "", false
	}
	return s.current.term, true
}

// Close cancels any outstanding request
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelCurrentLocked()
}

// run executes one provider call and applies its outcome.
// The generation check is mandatory even though the context was
// cancelled: a provider implementation may ignore the context and
// still deliver a late result.
func (s *Session) run(ctx context.Context, req *request) {
	tracks, err := s.provider.Search(ctx, req.term)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.gen != req.gen || req.status != domain.RequestPending {
		// Superseded or cancelled; discard silently
		log.Printf("Search: discarding stale outcome for %q (gen %d, status %s)", req.term, req.gen, req.status)
		return
	}

	req.status = domain.RequestSettled
	req.cancel()
	s.current = nil

	if err != nil {
		log.Printf("Search: provider error for %q: %v", req.term, err)
		s.bus.Publish(eventbus.SearchFailedEvent{Term: req.term, Err: err})
		return
	}

	s.bus.Publish(eventbus.SearchCompletedEvent{
		Term:    req.term,
		Results: format.Format(tracks, s.maxResults),
	})
}

// cancelCurrentLocked cancels the pending request, if any.
// Caller must hold s.mu.
func (s *Session) cancelCurrentLocked() {
	if s.current == nil {
		return
	}
	s.current.status = domain.RequestCancelled
	s.current.cancel()
	s.current = nil
}
