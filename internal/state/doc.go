// Package state provides thread-safe storage for the last fetched book list.
//
// # Overview
//
// The book list is fetched from two places: the UI, after every commit or on
// a manual refresh, and the optional background poller. Both write into a
// Store; the UI reads it back through Snapshot.
//
//	Poller / UI command:           UI update loop:
//	┌──────────────────┐          ┌──────────────────┐
//	│ seq := Begin()   │          │                  │
//	│ ListBooks()      │          │                  │
//	│ Update(seq, ...) │─────────→│ Snapshot()       │
//	└──────────────────┘ (mutex)  └──────────────────┘
//
// # Ordering
//
// Fetches may overlap: several keystrokes each trigger an update followed by
// a re-fetch, and the responses can arrive in any order. Every fetch takes a
// sequence number from Begin before it is issued. Update applies a result only
// when its sequence is newer than the last applied one, so a slow response can
// never replace a fresher list.
//
// Supersede moves the floor forward without a fetch. The UI calls it after a
// local create or delete so that lists requested before the change are
// discarded. It reports whether one of them was still outstanding; the UI
// then fetches again so a discarded list, such as the one following an
// update, is replaced by a newer one.
//
// # Snapshot
//
// Snapshot returns a copy: Books is cloned and LastError re-wrapped, so callers
// may keep it without holding the lock. Version increases on every applied
// change and lets the UI skip work when nothing moved.
//
// # Failures
//
// A failed fetch keeps the previous books and LastUpdated, records the error
// and increments ConsecutiveFailures. A later success clears the error and
// the count.
package state
