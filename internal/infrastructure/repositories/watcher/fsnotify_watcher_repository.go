package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// skippedDirs are never watched: they hold build output or VCS metadata.
var skippedDirs = map[string]struct{}{ //nolint:gochecknoglobals // read-only lookup table
	".git":         {},
	".idea":        {},
	"target":       {},
	"node_modules": {},
}

// FSNotifyWatcherRepository watches a directory tree with fsnotify.
type FSNotifyWatcherRepository struct{}

var _ repositories.WatcherRepository = (*FSNotifyWatcherRepository)(nil)

// NewFSNotifyWatcherRepository creates a FSNotifyWatcherRepository.
func NewFSNotifyWatcherRepository() *FSNotifyWatcherRepository {
	return &FSNotifyWatcherRepository{}
}

// Watch collects change events and calls onChange once no new event arrived
// for the debounce duration. A root that is a regular file is watched through
// its parent directory, without descending into subdirectories.
func (it *FSNotifyWatcherRepository) Watch(
	ctx context.Context,
	root string,
	debounce time.Duration,
	onChange func(paths []string),
) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if info, statErr := os.Stat(root); statErr == nil && !info.IsDir() {
		// a single file is watched through its directory
		if addErr := fsw.Add(filepath.Dir(root)); addErr != nil {
			return fmt.Errorf("failed to watch %q: %w", root, addErr)
		}
	} else if addErr := addRecursive(fsw, root); addErr != nil {
		return addErr
	}
	logger.Infof("Watching %s for changes", root)

	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				// new directories need their own watch
				_ = addRecursive(fsw, event.Name)
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			pending[event.Name] = struct{}{}

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			paths := make([]string, 0, len(pending))
			for path := range pending {
				paths = append(paths, path)
			}
			pending = make(map[string]struct{})
			sort.Strings(paths)
			onChange(paths)

		case watchErr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("Watcher error: %v", watchErr)
		}
	}
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("failed to watch %q: %w", root, err)
			}
			return nil //nolint:nilerr // unreadable entries below the root are skipped
		}
		if !d.IsDir() {
			return nil
		}
		if _, skip := skippedDirs[d.Name()]; skip && path != root {
			return filepath.SkipDir
		}
		if addErr := fsw.Add(path); addErr != nil {
			return fmt.Errorf("failed to watch %q: %w", path, addErr)
		}
		return nil
	})
}
