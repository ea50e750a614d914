package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/bookshelf/internal/catalog"
)

// Snapshot represents the latest book list available to the UI.
type Snapshot struct {
	Books               []catalog.Book
	HasBooks            bool
	LastUpdated         time.Time // Time of the last successful fetch
	LastError           error
	ConsecutiveFailures int    // Number of consecutive fetch failures
	Seq                 uint64 // Sequence of the last applied fetch
	Version             uint64 // Increments on every applied change
}

// IsOffline returns true when the API has been unreachable for multiple fetches.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	issued   uint64
	floor    uint64
}

// Begin reserves the sequence number for a fetch about to be issued.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Supersede discards every fetch issued so far. It reports whether one of
// them was still outstanding, in which case the caller should fetch again.
func (s *Store) Supersede() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.issued > max(s.floor, s.snapshot.Seq)
	s.floor = s.issued
	return pending
}

// Superseded reports whether fetch seq was discarded by Supersede.
func (s *Store) Superseded(seq uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return seq <= s.floor
}

// Update records the outcome of fetch seq. Results from a fetch older than the
// last applied one are dropped and Update returns false. When err is non-nil
// the previous books are kept but the error is recorded.
func (s *Store) Update(seq uint64, books []catalog.Book, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.floor || seq <= s.snapshot.Seq {
		return false
	}
	s.snapshot.Seq = seq
	s.snapshot.Version++

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return true
	}

	s.snapshot.Books = catalog.CloneBooks(books)
	if s.snapshot.Books == nil {
		s.snapshot.Books = []catalog.Book{}
	}
	s.snapshot.HasBooks = true
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Books = catalog.CloneBooks(s.snapshot.Books)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
