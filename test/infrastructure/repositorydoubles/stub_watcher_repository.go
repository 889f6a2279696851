//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"time"

	"github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// StubWatcherRepository replays predefined change batches and returns.
type StubWatcherRepository struct {
	Batches  [][]string
	WatchErr error

	// spy: arguments received
	Root     string
	Debounce time.Duration
}

var _ repositories.WatcherRepository = (*StubWatcherRepository)(nil)

func (w *StubWatcherRepository) Watch(
	_ context.Context,
	root string,
	debounce time.Duration,
	onChange func(paths []string),
) error {
	w.Root = root
	w.Debounce = debounce
	for _, batch := range w.Batches {
		onChange(batch)
	}
	return w.WatchErr
}
