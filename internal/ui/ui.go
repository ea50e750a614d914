package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/editor"
	"github.com/five82/bookshelf/internal/state"
)

// Options configure the book screen.
type Options struct {
	Context   context.Context
	Client    catalog.API
	Store     *state.Store
	Editor    editor.Options
	Logger    *slog.Logger
	BaseURL   string
	Mode      string
	LogFile   string
	PollTick  time.Duration // zero disables the store refresh tick
	ThemeName string
	PrefsPath string // empty uses ~/.config/bookshelf/prefs.toml
}

// Run starts the TUI and blocks until the user quits or the context ends.
func Run(opts Options) error {
	if opts.Client == nil {
		return errors.New("ui: nil client")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	applyColorProfile()
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	m.live.Close()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
