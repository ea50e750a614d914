package catalog

import "fmt"

// Book mirrors a single catalog entry.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
}

// CreateRequest is the body of POST /api/books/create/.
type CreateRequest struct {
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
}

// UpdateRequest is the body of PUT /api/books/{id}. It always carries the full
// row, never a partial patch.
type UpdateRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
}

// UpdateFor builds the full-row update body for b.
func UpdateFor(b Book) UpdateRequest {
	return UpdateRequest{ID: b.ID, Title: b.Title, ReleaseYear: b.ReleaseYear}
}

// String renders a compact human form used by the CLI.
func (b Book) String() string {
	return fmt.Sprintf("#%d %q (%d)", b.ID, b.Title, b.ReleaseYear)
}

// IndexOf returns the position of id in books, or -1.
func IndexOf(books []Book, id int64) int {
	for i, b := range books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// CloneBooks returns an independent copy of books. Nil stays nil.
func CloneBooks(books []Book) []Book {
	if books == nil {
		return nil
	}
	dup := make([]Book, len(books))
	copy(dup, books)
	return dup
}
