package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/server/storage"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage is a SQLite-backed book repository.
type Storage struct {
	db *sql.DB
}

var _ storage.Repository = (*Storage)(nil)

// New opens dbPath and applies pending migrations.
// Use ":memory:" for a throwaway database.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// One writer at a time; this also keeps ":memory:" on a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	s := &Storage{db: db}
	if err := s.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

func (s *Storage) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Seed inserts books when the table is empty. Explicit ids are kept.
func (s *Storage) Seed(ctx context.Context, books []catalog.Book) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&n); err != nil {
		return fmt.Errorf("count books: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, b := range books {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO books (id, title, release_year) VALUES (?, ?, ?)`,
			b.ID, b.Title, b.ReleaseYear,
		); err != nil {
			return fmt.Errorf("seed book %d: %w", b.ID, err)
		}
	}
	return nil
}

// List returns all books in ascending ID order.
func (s *Storage) List(ctx context.Context) ([]catalog.Book, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, release_year FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer func() { _ = rows.Close() }()

	books := []catalog.Book{}
	for rows.Next() {
		var b catalog.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.ReleaseYear); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}

// Get retrieves a book by its ID.
func (s *Storage) Get(ctx context.Context, id int64) (catalog.Book, error) {
	var b catalog.Book
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, release_year FROM books WHERE id = ?`, id,
	).Scan(&b.ID, &b.Title, &b.ReleaseYear)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Book{}, fmt.Errorf("get %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return catalog.Book{}, fmt.Errorf("get %d: %w", id, err)
	}
	return b, nil
}

// Create inserts a book and returns it with its assigned ID.
func (s *Storage) Create(ctx context.Context, req catalog.CreateRequest) (catalog.Book, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO books (title, release_year) VALUES (?, ?)`,
		req.Title, req.ReleaseYear,
	)
	if err != nil {
		return catalog.Book{}, fmt.Errorf("create book: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return catalog.Book{}, fmt.Errorf("create book: %w", err)
	}
	return catalog.Book{ID: id, Title: req.Title, ReleaseYear: req.ReleaseYear}, nil
}

// Update replaces title and release year of an existing book.
func (s *Storage) Update(ctx context.Context, book catalog.Book) (catalog.Book, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE books SET title = ?, release_year = ? WHERE id = ?`,
		book.Title, book.ReleaseYear, book.ID,
	)
	if err != nil {
		return catalog.Book{}, fmt.Errorf("update %d: %w", book.ID, err)
	}
	if err := expectOne(res, "update", book.ID); err != nil {
		return catalog.Book{}, err
	}
	return book, nil
}

// Delete removes a book.
func (s *Storage) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete %d: %w", id, err)
	}
	return expectOne(res, "delete", id)
}

func expectOne(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: %w", op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", op, id, storage.ErrNotFound)
	}
	return nil
}
