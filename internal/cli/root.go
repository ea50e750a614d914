// Package cli implements the bookshelf command line: the TUI by default, plus
// scriptable book commands, the development API server and a log viewer.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/bookshelf/internal/app"
	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/config"
)

// App holds the persistent flags shared by every command.
type App struct {
	ConfigPath string
	Mode       string
	Poll       time.Duration
	PrefsPath  string
}

// NewRootCmd builds the bookshelf command tree.
func NewRootCmd() *cobra.Command {
	a := &App{}

	cmd := &cobra.Command{
		Use:          "bookshelf",
		Short:        "Terminal book catalog with inline editing",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI against the local API
  bookshelf --mode local

  # Run the development API with a SQLite file
  bookshelf serve --db ~/.local/share/bookshelf/books.db

  # Scriptable commands
  bookshelf books list
  bookshelf books add --title Dune --year 1965
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: a.ConfigPath,
				Mode:       a.Mode,
				PrefsPath:  a.PrefsPath,
				PollEvery:  a.Poll,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", envOr("BOOKSHELF_CONFIG", ""), "Config file (default ~/.config/bookshelf/config.toml)")
	cmd.PersistentFlags().StringVar(&a.Mode, "mode", "", "API mode: production or local (overrides config)")
	cmd.PersistentFlags().DurationVar(&a.Poll, "poll", 0, "Background refresh interval for the TUI, e.g. 5s (0 disables)")
	cmd.PersistentFlags().StringVar(&a.PrefsPath, "prefs", "", "Preferences file (default ~/.config/bookshelf/prefs.toml)")

	cmd.AddCommand(newBooksCmd(a))
	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newLogsCmd(a))

	return cmd
}

// loadConfig reads the config file and applies the --mode override.
func loadConfig(a *App) (config.Config, error) {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if a.Mode != "" {
		mode, err := config.ParseMode(a.Mode)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Mode = mode
	}
	return cfg, nil
}

func newClient(a *App) (*catalog.Client, error) {
	cfg, err := loadConfig(a)
	if err != nil {
		return nil, err
	}
	baseURL, err := cfg.BaseURL()
	if err != nil {
		return nil, err
	}
	return catalog.NewClient(baseURL)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
