// Package catalog provides an HTTP client for the book catalog CRUD API.
//
// # Overview
//
// The catalog API owns the canonical list of books. This package defines the
// wire types and a small client that performs one request per operation:
//
//   - GET /api/books/: list every book
//   - POST /api/books/create/: create a book, returns the stored book with its id
//   - PUT /api/books/{id}: replace title and release year (response ignored)
//   - DELETE /api/books/{id}: remove a book (response ignored)
//
// # Client Usage
//
//	client, err := catalog.NewClient("http://127.0.0.1:8000")
//	if err != nil {
//		return err
//	}
//	books, err := client.ListBooks(ctx)
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json (and Content-Type when a body is sent)
//   - Include User-Agent: bookshelf/<version>
//   - Carry a fresh X-Request-ID so server logs can be correlated
//   - Have a 5-second timeout
//
// # Error Handling
//
// Transport failures (connection refused, timeout, DNS) are returned as wrapped
// errors. A response with status >= 400 is returned as *StatusError so callers
// can tell "the server answered" apart from "the request never arrived":
//
//	var statusErr *catalog.StatusError
//	if errors.As(err, &statusErr) {
//		// the server saw the request
//	}
//
// # Testing
//
// The API interface is implemented by *Client and can be substituted in tests.
package catalog
