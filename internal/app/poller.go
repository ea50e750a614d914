package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/state"
)

const (
	uiRefreshInterval = time.Second
	maxBackoff        = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at
// interval, backing off while the API keeps failing. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client catalog.API, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	go func() {
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(ctx, store, client, logger)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for range failures {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

func refresh(ctx context.Context, store *state.Store, client catalog.API, logger *slog.Logger) {
	seq := store.Begin()
	books, err := client.ListBooks(ctx)
	if err != nil && ctx.Err() != nil {
		return
	}
	if !store.Update(seq, books, err) {
		return
	}
	if err == nil || logger == nil {
		return
	}
	snap := store.Snapshot()
	if snap.IsOffline() {
		logger.Error("books api unreachable", "error", err, "failures", snap.ConsecutiveFailures)
		return
	}
	logger.Warn("book poll failed", "error", err, "failures", snap.ConsecutiveFailures)
}
