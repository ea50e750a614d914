// Package logtail reads the tail of bookshelf's diagnostic log.
//
// # Overview
//
// The TUI owns the terminal, so failed requests are written to a log file
// instead of the screen. `bookshelf logs` uses this package to print the last
// lines of that file, optionally keeping only lines at or above a level.
//
// # Reading
//
// Read scans the file once and keeps a ring buffer of the last maxLines
// matching lines, so memory stays O(maxLines) regardless of file size. A
// missing file is not an error; it simply yields no lines.
//
// # Levels
//
// Lines are expected in log/slog text format:
//
//	time=2025-01-02T15:04:05.000Z level=WARN msg="update book failed" id=3 error="..."
//
// LineLevel extracts the level field. Lines without one are treated as INFO.
//
// # Display
//
// Colorize highlights the level token with lipgloss for terminal output.
package logtail
