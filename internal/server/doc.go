// Package server is a local implementation of the books CRUD API, used for
// local mode and end-to-end tests.
//
// Routes:
//
//	GET    /api/books/         list every book
//	POST   /api/books/create/  create a book, answers with the stored row
//	GET    /api/books/{id}     fetch one book
//	PUT    /api/books/{id}     replace title and release year
//	DELETE /api/books/{id}     remove a book, answers 204
//	GET    /health             liveness check
//
// Errors are JSON objects of the form {"error": "..."}. Every request gets an
// X-Request-ID, taken from the request when present, which the logging
// middleware records alongside method, path, status and duration.
package server
