package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/server"
	"github.com/five82/bookshelf/internal/server/storage"
	"github.com/five82/bookshelf/internal/server/storage/sqlite"
)

func newServeCmd(a *App) *cobra.Command {
	var listen string
	var dbPath string
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development books API",
		Long:  "Serves the books CRUD API locally. Without --db the data lives in memory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("listen") {
				listen = cfg.Serve.Listen
			}
			if !cmd.Flags().Changed("db") {
				dbPath = cfg.Serve.DBPath
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			repo, err := openRepository(cmd.Context(), dbPath, seed)
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			if dbPath == "" {
				logger.Info("using in-memory storage")
			} else {
				logger.Info("using sqlite storage", "path", dbPath)
			}
			return server.New(repo, logger).ListenAndServe(cmd.Context(), listen, nil)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from config, 127.0.0.1:8000)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file (empty keeps data in memory)")
	cmd.Flags().BoolVar(&seed, "seed", true, "Load example books into an empty store")
	return cmd
}

func openRepository(ctx context.Context, dbPath string, seed bool) (storage.Repository, error) {
	var books []catalog.Book
	if seed {
		books = storage.SeedData()
	}
	if dbPath == "" {
		return storage.NewMemoryRepository(books), nil
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	s, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	if err := s.Seed(ctx, books); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}
