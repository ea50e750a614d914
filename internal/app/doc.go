// Package app is the composition root of the bookshelf TUI.
//
// # Overview
//
// Run wires configuration, the catalog client, the shared state.Store, the
// optional background poller and the UI together, then blocks in ui.Run.
//
//  1. Load ~/.config/bookshelf/config.toml (missing file means defaults)
//  2. Apply the --mode override and resolve the API root
//  3. Open the diagnostic log file (the TUI owns the terminal)
//  4. Start the poller when a poll interval is given
//  5. Start the TUI and block until the user quits or the context ends
//
// # Components
//
//   - app.go: Run, startup wiring and OpenLog
//   - poller.go: background list refresh with exponential backoff
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        read config, env overrides
//	       ├─────> catalog.NewClient()  HTTP client for the books API
//	       ├─────> OpenLog()            slog text handler on the log file
//	       ├─────> StartPoller()        only with --poll
//	       └─────> ui.Run()             bubbletea program (blocks)
//
// # Polling Behavior
//
// Polling is off by default: the screen re-fetches after every mutation on
// its own. With --poll the poller lists books at the given interval and
// doubles the wait after each consecutive failure, up to 30 seconds. Every
// poll takes a sequence number from the store, so a slow poll never
// overwrites a newer list the UI already applied.
//
// # Error Handling
//
// Fatal (returned from Run): invalid config, unknown mode, production mode
// without a production URL, unusable log path.
//
// Everything after startup is recoverable: failures are logged and shown in
// the header, and the screen keeps running.
package app
