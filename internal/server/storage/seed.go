package storage

import "github.com/five82/bookshelf/internal/catalog"

// SeedData returns example books to pre-populate an empty repository.
func SeedData() []catalog.Book {
	return []catalog.Book{
		{ID: 1, Title: "Dune", ReleaseYear: 1965},
		{ID: 2, Title: "Foundation", ReleaseYear: 1951},
		{ID: 3, Title: "The Left Hand of Darkness", ReleaseYear: 1969},
		{ID: 4, Title: "Neuromancer", ReleaseYear: 1984},
	}
}
