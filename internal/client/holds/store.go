package holds

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/timex"
	"github.com/google/uuid"
)

// Store is an in-memory, insertion-ordered collection of holds. It is owned
// by the caller (typically the checkout flow) and is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries []HoldEntry
	clock   timex.Clock
	newID   func() string
}

// Option configures a Store created by New.
type Option func(*Store)

// WithClock replaces the system clock.
func WithClock(c timex.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithIDGenerator replaces the UUID generator. The generator must not repeat
// values during the lifetime of the store.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) {
		if f != nil {
			s.newID = f
		}
	}
}

// New returns an empty Store using the system clock and UUID IDs unless
// overridden by opts.
func New(opts ...Option) *Store {
	s := &Store{
		clock: timex.NewSystemClock(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PruneExpired drops every entry whose deadline is at or before now.
func (s *Store) PruneExpired() {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = prune(s.entries, now)
}

// ActiveEntries returns the holds that have not expired yet. It never
// compacts the store.
func (s *Store) ActiveEntries() []HoldEntry {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	return Active(s.entries, now)
}

// TotalCount is the number of active holds.
func (s *Store) TotalCount() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.entries {
		if e.ActiveAt(now) {
			n++
		}
	}
	return n
}

// MinRemaining is the time left on the hold that expires first, or 0 when
// there are no active holds.
func (s *Store) MinRemaining() time.Duration {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	return MinRemainingAt(s.entries, now)
}

// Add prunes expired holds, appends a new one valid for HoldDuration and
// returns its ID.
func (s *Store) Add(in HoldInput) string {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = prune(s.entries, now)

	id := s.newID()
	s.entries = append(s.entries, HoldEntry{
		ID:            id,
		CreatedAt:     now,
		ExpiresAt:     now.Add(HoldDuration),
		TechnicianUID: in.TechnicianUID,
		ResourceUID:   in.ResourceUID,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Details:       maps.Clone(in.Details),
	})
	return id
}

// Remove deletes the hold with the given ID. Unknown IDs are ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = slices.DeleteFunc(s.entries, func(e HoldEntry) bool {
		return e.ID == id
	})
}

// Clear drops every hold.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// HoldPayload prunes expired holds and returns the remaining ones in the
// shape expected by the create-appointment call. Prune and read happen under
// a single lock.
func (s *Store) HoldPayload() []models.HoldPayloadItem {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = prune(s.entries, now)
	return Payload(s.entries, now)
}

// Size is the number of stored rows, including expired ones that have not
// been pruned yet. It is meant for diagnostics; callers use TotalCount.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
