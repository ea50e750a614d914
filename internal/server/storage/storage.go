package storage

import (
	"context"
	"errors"

	"github.com/five82/bookshelf/internal/catalog"
)

// ErrNotFound indicates that no book has the requested id.
var ErrNotFound = errors.New("book not found")

// Repository describes the behaviour required for storing books.
type Repository interface {
	List(ctx context.Context) ([]catalog.Book, error)
	Get(ctx context.Context, id int64) (catalog.Book, error)
	Create(ctx context.Context, req catalog.CreateRequest) (catalog.Book, error)
	Update(ctx context.Context, book catalog.Book) (catalog.Book, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}
