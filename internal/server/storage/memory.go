package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/five82/bookshelf/internal/catalog"
)

// MemoryRepository provides an in-memory implementation of Repository.
type MemoryRepository struct {
	mu     sync.RWMutex
	books  map[int64]catalog.Book
	nextID int64
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository constructs a MemoryRepository seeded with the provided books.
func NewMemoryRepository(seed []catalog.Book) *MemoryRepository {
	repo := &MemoryRepository{
		books:  make(map[int64]catalog.Book, len(seed)),
		nextID: 1,
	}
	for _, book := range seed {
		repo.books[book.ID] = book
		if book.ID >= repo.nextID {
			repo.nextID = book.ID + 1
		}
	}
	return repo
}

// List returns all books in ascending ID order.
func (r *MemoryRepository) List(_ context.Context) ([]catalog.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]catalog.Book, 0, len(r.books))
	for _, book := range r.books {
		result = append(result, book)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Get retrieves a book by its ID.
func (r *MemoryRepository) Get(_ context.Context, id int64) (catalog.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return catalog.Book{}, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	return book, nil
}

// Create adds a new book, assigning the next ID.
func (r *MemoryRepository) Create(_ context.Context, req catalog.CreateRequest) (catalog.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book := catalog.Book{ID: r.nextID, Title: req.Title, ReleaseYear: req.ReleaseYear}
	r.nextID++
	r.books[book.ID] = book
	return book, nil
}

// Update replaces the book with the same ID if it exists.
func (r *MemoryRepository) Update(_ context.Context, book catalog.Book) (catalog.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[book.ID]; !ok {
		return catalog.Book{}, fmt.Errorf("update %d: %w", book.ID, ErrNotFound)
	}
	r.books[book.ID] = book
	return book, nil
}

// Delete removes the book with the provided ID if it exists.
func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	delete(r.books, id)
	return nil
}

// Close is a no-op.
func (r *MemoryRepository) Close() error {
	return nil
}
