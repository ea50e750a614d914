// Package sqlite implements storage.Repository on SQLite using the pure-Go
// modernc.org/sqlite driver. The schema is created by goose migrations
// embedded in the binary and applied when the store is opened.
package sqlite
