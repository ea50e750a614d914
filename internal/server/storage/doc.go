// Package storage defines the book repository behind the development API
// server, and provides an in-memory implementation with seed data.
//
// Implementations return ErrNotFound for unknown ids. The sqlite subpackage
// provides a persistent implementation.
package storage
