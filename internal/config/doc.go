// Package config loads bookshelf configuration.
//
// # Overview
//
// The only thing the book screen really needs is the catalog API base URL.
// Two URLs are configured, one for production and one for a local
// development server, and a mode switch selects between them.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bookshelf/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. Environment variables override file values
//
// # Environment
//
//   - BOOKSHELF_MODE: "production", "local" or empty
//   - BOOKSHELF_PROD_URL: production API root
//   - BOOKSHELF_LOCAL_URL: local API root
//
// # Base URL Selection
//
//   - production: ProdURL, which must be set
//   - local: LocalURL
//   - empty: ProdURL when set, otherwise LocalURL
//
// # TOML Format
//
//	mode = "local"
//	prod_url = "https://books.example.com"
//	local_url = "http://127.0.0.1:8000"
//	close_on_commit = false
//	log_file = "~/.local/state/bookshelf/bookshelf.log"
//
//	[serve]
//	listen = "127.0.0.1:8000"
//	db = "~/.local/share/bookshelf/books.db"
//
// Paths starting with "~" are expanded against the user's home directory.
package config
