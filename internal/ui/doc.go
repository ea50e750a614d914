// Package ui provides the terminal book screen for bookshelf.
//
// # Architecture Overview
//
// The UI is a single bubbletea program running in the alt screen with mouse
// cell-motion reporting. It lists the catalog, offers a create form, and lets
// the user edit a row's title or release year in place by clicking it.
//
// # Package Structure
//
//   - ui.go: Options and Run, the program entry point
//   - model.go: Model, Init, Update and the key/mouse handlers
//   - commands.go: tea.Cmd wrappers around catalog.API calls and their messages
//   - layout.go: screen geometry shared by rendering and mouse hit testing
//   - view.go, header.go, help.go: rendering
//   - keys.go: bubbles/key bindings and footer help
//   - theme.go, style_helpers.go: lipgloss themes (Dracula, Slate)
//
// # Editing
//
// Edit state lives in an editor.Controller. Clicking a displayed title or year
// opens that field; the most recently opened field owns the inline
// textinput. Every key delivered to that input updates the row's draft and
// sends the full row to the API, followed by a re-fetch of the list.
//
// An editor.Watcher sees every left press before anything else. While any
// field is open, a press outside the active input closes every field. Esc
// does the same from the keyboard.
//
// # Data Flow
//
//	click/key ──> Update ──> Controller ──> tea.Cmd ──> catalog.API
//	                 ^                                      │
//	                 └──────── result msg (token, seq) <────┘
//
// List results are stamped with a sequence number from state.Store; an
// older result never replaces a newer one. All results carry a liveness
// token and are ignored once the program has quit.
//
// # Errors
//
// Failures are logged and summarized passively in the header. Nothing is
// retried and no dialog is shown.
package ui
