package commands

import (
	"context"
	"fmt"
	"sort"
	"sync"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pomlint/internal/infrastructure/repositories"
)

// Fix is the interface for the fix command.
type Fix interface {
	Execute(ctx context.Context, settings *entities.Settings, opts FixOptions) ([]entities.FixResult, error)
}

// FixOptions holds runtime options for one fix run.
type FixOptions struct {
	Root string // directory or single pom.xml
}

// FixCommand applies every offered fix to the discovered descriptors and
// writes them back.
type FixCommand struct {
	projects          repositories.ProjectRepository
	inspection        entities.Inspection
	discoveryRegistry *infraRepos.DiscoveryRegistry
}

// NewFixCommand creates a new FixCommand.
func NewFixCommand(
	projects repositories.ProjectRepository,
	inspection entities.Inspection,
	discoveryRegistry *infraRepos.DiscoveryRegistry,
) *FixCommand {
	return &FixCommand{
		projects:          projects,
		inspection:        inspection,
		discoveryRegistry: discoveryRegistry,
	}
}

// Execute fixes every descriptor below opts.Root. Files that fail are logged
// and counted; the first failure is returned after all files were processed.
func (it *FixCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts FixOptions,
) ([]entities.FixResult, error) {
	if settings.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	paths, err := discover(ctx, it.discoveryRegistry, settings, opts.Root)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		results  []entities.FixResult
		firstErr error
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(settings.Concurrency)
	for _, path := range paths {
		group.Go(func() error {
			result, fixErr := it.fixFile(groupCtx, path, settings.DryRun)

			mu.Lock()
			defer mu.Unlock()
			if fixErr != nil {
				logger.WithField("file", path).Errorf("Failed to fix: %v", fixErr)
				if firstErr == nil {
					firstErr = fixErr
				}
				return nil
			}
			results = append(results, result)
			return nil
		})
	}
	_ = group.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })
	logSummary(results, settings.DryRun)
	return results, firstErr
}

// fixFile applies the first offered fix, re-scans and repeats until the
// document has no more findings. Views captured by a scan are stale after an
// edit, so no diagnostic is reused across iterations.
func (it *FixCommand) fixFile(ctx context.Context, path string, dryRun bool) (entities.FixResult, error) {
	result := entities.FixResult{File: path}
	log := logger.WithField("file", path)

	doc, err := it.projects.Load(ctx, path)
	if err != nil {
		return result, err
	}

	// every fix turns one declaration into a placeholder, and a fix may make
	// another declaration eligible, so the declarations bound the iterations
	diagnostics := it.inspection.Scan(doc)
	budget := len(entities.CollectCandidates(doc))
	for len(diagnostics) > 0 {
		if budget == 0 {
			return result, fmt.Errorf("fixes for %q did not converge", path)
		}
		budget--

		diagnostic := diagnostics[0]
		fix := diagnostic.Fix
		switch fix.Apply() {
		case entities.FixApplied:
			log.Infof("Extracted version of %s into property %s", diagnostic.Dependency.Coordinates(), fix.PropertyName)
			result.Applied = append(result.Applied, fix.PropertyName)
		case entities.FixPartiallyApplied:
			log.Warnf(
				"Rewrote version of %s to %s but found no <properties> block; property was not created",
				diagnostic.Dependency.Coordinates(), fix.Expression,
			)
			result.PartiallyApplied = append(result.PartiallyApplied, fix.PropertyName)
		}

		diagnostics = it.inspection.Scan(doc)
	}

	if !result.Changed() || dryRun {
		return result, nil
	}
	if saveErr := it.projects.Save(ctx, doc); saveErr != nil {
		return result, saveErr
	}
	result.Saved = true
	return result, nil
}

func logSummary(results []entities.FixResult, dryRun bool) {
	applied, partial, files := 0, 0, 0
	for _, result := range results {
		applied += len(result.Applied)
		partial += len(result.PartiallyApplied)
		if result.Changed() {
			files++
		}
	}

	if dryRun {
		logger.Infof("Dry run: %d fix(es) would change %d file(s), nothing written", applied+partial, files)
		return
	}
	logger.Infof("Fix complete: %d applied, %d without property, %d file(s) written", applied, partial, files)
}
