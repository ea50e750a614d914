// Package editor holds the inline-edit state of the book table.
//
// # Overview
//
// The book screen lets the user click a row's title or release year to turn
// that cell into an input. Three small pieces cooperate:
//
//   - Controller: the displayed books, a per-row {title, year} editing flag
//     pair, and the drafts typed into open inputs.
//   - Watcher: closes every open input when a pointer press lands outside the
//     input that currently has focus.
//   - Liveness: hands out tokens for outstanding requests so results arriving
//     after the view was torn down are ignored.
//
// # State Machine
//
// Each (row, field) pair is either Viewing or Editing:
//
//	Viewing --click on value--> Editing
//	Editing --pointer press outside the active input--> Viewing (every field)
//	Editing --toggle--> Viewing
//
// Committing a value does not leave Editing unless Options.CloseOnCommit is
// set.
//
// # Drafts
//
// Drafts are keyed by row and field. Opening a field seeds its draft from the
// row's current value; closing it drops the draft. Two rows open at the same
// time never see each other's text.
//
// A year draft only changes when the typed text parses as an integer. Text
// that does not parse leaves the previous value in place and SetDraftYear
// reports ErrInvalidYear.
//
// # Concurrency
//
// Controller and Watcher are not safe for concurrent use; they are meant to
// be driven from a single event loop. Liveness is safe for concurrent use.
package editor
