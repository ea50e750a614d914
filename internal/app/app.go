package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/config"
	"github.com/five82/bookshelf/internal/editor"
	"github.com/five82/bookshelf/internal/prefs"
	"github.com/five82/bookshelf/internal/state"
	"github.com/five82/bookshelf/internal/ui"
)

// Options configure the bookshelf TUI.
type Options struct {
	ConfigPath string
	Mode       string        // overrides the configured mode when set
	PrefsPath  string        // empty uses default ~/.config/bookshelf/prefs.toml
	PollEvery  time.Duration // zero disables background polling
	Logger     *slog.Logger  // nil logs to the configured log file
}

// session holds everything Run wires together before the UI starts.
type session struct {
	cfg     config.Config
	client  *catalog.Client
	baseURL string
	logger  *slog.Logger
	closeFn func() error
}

// Run boots the bookshelf TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := prepare(opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.closeFn() }()

	userPrefs := prefs.Load(opts.PrefsPath)
	store := &state.Store{}

	pollTick := time.Duration(0)
	if opts.PollEvery > 0 {
		StartPoller(ctx, store, s.client, opts.PollEvery, s.logger)
		pollTick = uiRefreshInterval
	}

	s.logger.Info("bookshelf starting", "base_url", s.baseURL, "mode", string(s.cfg.EffectiveMode()))
	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    s.client,
		Store:     store,
		Editor:    editor.Options{CloseOnCommit: s.cfg.CloseOnCommit},
		Logger:    s.logger,
		BaseURL:   s.baseURL,
		Mode:      string(s.cfg.EffectiveMode()),
		LogFile:   s.cfg.LogFile,
		PollTick:  pollTick,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

func prepare(opts Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Mode != "" {
		mode, err := config.ParseMode(opts.Mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}

	baseURL, err := cfg.BaseURL()
	if err != nil {
		return nil, err
	}
	client, err := catalog.NewClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("init catalog client: %w", err)
	}

	s := &session{
		cfg:     cfg,
		client:  client,
		baseURL: client.BaseURL(),
		logger:  opts.Logger,
		closeFn: func() error { return nil },
	}
	if s.logger == nil {
		logger, closeFn, err := OpenLog(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		s.logger, s.closeFn = logger, closeFn
	}
	return s, nil
}

// OpenLog opens path as the diagnostic log. The TUI owns the terminal, so
// both slog output and the standard logger go to the file. An empty path
// discards everything.
func OpenLog(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "bookshelf")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}
