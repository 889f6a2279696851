package commands

import (
	"context"
	"io"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pomlint/internal/infrastructure/repositories"
)

// Watch is the interface for the watch command.
type Watch interface {
	Execute(ctx context.Context, settings *entities.Settings, opts WatchOptions) error
}

// WatchOptions holds runtime options for watch mode.
type WatchOptions struct {
	Root   string
	Output io.Writer
}

// WatchCommand inspects the tree once, then re-inspects descriptors as they
// change until the context is cancelled.
type WatchCommand struct {
	inspect           *InspectCommand
	watcher           repositories.WatcherRepository
	discoveryRegistry *infraRepos.DiscoveryRegistry
	reportRegistry    *infraRepos.ReportRegistry
}

// NewWatchCommand creates a new WatchCommand.
func NewWatchCommand(
	inspect *InspectCommand,
	watcher repositories.WatcherRepository,
	discoveryRegistry *infraRepos.DiscoveryRegistry,
	reportRegistry *infraRepos.ReportRegistry,
) *WatchCommand {
	return &WatchCommand{
		inspect:           inspect,
		watcher:           watcher,
		discoveryRegistry: discoveryRegistry,
		reportRegistry:    reportRegistry,
	}
}

// Execute blocks until ctx is done.
func (it *WatchCommand) Execute(ctx context.Context, settings *entities.Settings, opts WatchOptions) error {
	reporter, err := it.reportRegistry.Get(settings.Output)
	if err != nil {
		return err
	}

	// failing on findings would stop the watch on the first report
	initial := *settings
	initial.FailOnFindings = false
	if _, inspectErr := it.inspect.Execute(ctx, &initial, InspectOptions(opts)); inspectErr != nil {
		return inspectErr
	}

	return it.watcher.Watch(ctx, opts.Root, settings.WatchDebounce, func(changed []string) {
		paths, discoverErr := discover(ctx, it.discoveryRegistry, settings, opts.Root)
		if discoverErr != nil {
			logger.Errorf("Failed to refresh descriptors: %v", discoverErr)
			return
		}

		targets := intersect(paths, changed)
		if len(targets) == 0 {
			return
		}
		logger.Infof("Re-inspecting %d changed descriptor(s)", len(targets))

		report := it.inspect.inspectFiles(ctx, targets, settings.Concurrency)
		if writeErr := reporter.Write(opts.Output, report); writeErr != nil {
			logger.Errorf("Failed to write report: %v", writeErr)
		}
	})
}

// intersect keeps the discovered paths that appear in changed, in discovery
// order. Paths are compared in absolute form.
func intersect(discovered, changed []string) []string {
	set := make(map[string]struct{}, len(changed))
	for _, path := range changed {
		set[absolute(path)] = struct{}{}
	}

	var result []string
	for _, path := range discovered {
		if _, ok := set[absolute(path)]; ok {
			result = append(result, path)
		}
	}
	return result
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
