package repositories

import (
	"context"
	"time"
)

// WatcherRepository notifies about changed files below a root directory.
type WatcherRepository interface {
	// Watch blocks until ctx is done, calling onChange with the paths modified
	// during each debounce window.
	Watch(ctx context.Context, root string, debounce time.Duration, onChange func(paths []string)) error
}
