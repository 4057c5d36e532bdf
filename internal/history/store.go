// Package history keeps the ordered, title-unique record of past
// selections.
package history

import (
	"log"
	"sync"
	"time"

	"tunegrip/internal/domain"
	"tunegrip/internal/eventbus"
)

// Store is an in-memory, insertion-ordered set of history entries
// keyed by exact title. New entries append at the end; re-selecting an
// existing title is rejected, not promoted.
type Store struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
	byTitle map[string]struct{}

	bus eventbus.EventBus
	now func() time.Time
}

// NewStore creates an empty history store. The bus is optional; when
// set, add/remove outcomes are published so views can re-render.
func NewStore(bus eventbus.EventBus) *Store {
	return &Store{
		byTitle: make(map[string]struct{}),
		bus:     bus,
		now:     time.Now,
	}
}

// Add records a selection. Returns false without mutating anything if
// an entry with the same title already exists.
func (s *Store) Add(title string) bool {
	s.mu.Lock()
	if _, exists := s.byTitle[title]; exists {
		s.mu.Unlock()
		log.Printf("History: duplicate entry rejected: %q", title)
		if s.bus != nil {
			s.bus.Publish(eventbus.HistoryDuplicateEvent{Title: title})
		}
		return false
	}

	entry := domain.HistoryEntry{Title: title, CreatedAt: s.now()}
	s.entries = append(s.entries, entry)
	s.byTitle[title] = struct{}{}
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(eventbus.HistoryAddedEvent{Entry: entry})
	}
	return true
}

// Remove deletes the entry with the given title. Removing a title that
// is not present is a no-op.
func (s *Store) Remove(title string) {
	s.mu.Lock()
	if _, exists := s.byTitle[title]; !exists {
		s.mu.Unlock()
		return
	}

	delete(s.byTitle, title)
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Title != title {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(eventbus.HistoryRemovedEvent{Title: title})
	}
}

// Entries returns the history in insertion order.
// Returns a copy to prevent external modification.
func (s *Store) Entries() []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.HistoryEntry, len(s.entries))
	copy(result, s.entries)
	return result
}

// Len returns the number of entries
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
