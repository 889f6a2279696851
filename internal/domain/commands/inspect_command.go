package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pomlint/internal/infrastructure/repositories"
)

// ErrFindingsReported is returned when findings exist and the settings ask to
// fail on them.
var ErrFindingsReported = errors.New("literal dependency versions found")

// Inspect is the interface for the inspect command.
type Inspect interface {
	Execute(ctx context.Context, settings *entities.Settings, opts InspectOptions) (entities.Report, error)
}

// InspectOptions holds runtime options for one inspection.
type InspectOptions struct {
	Root   string    // directory or single pom.xml
	Output io.Writer // where the report is rendered
}

// InspectCommand discovers project descriptors, scans them and renders a
// report: discover -> load -> scan -> report.
type InspectCommand struct {
	projects          repositories.ProjectRepository
	inspection        entities.Inspection
	discoveryRegistry *infraRepos.DiscoveryRegistry
	reportRegistry    *infraRepos.ReportRegistry
}

// NewInspectCommand creates a new InspectCommand.
func NewInspectCommand(
	projects repositories.ProjectRepository,
	inspection entities.Inspection,
	discoveryRegistry *infraRepos.DiscoveryRegistry,
	reportRegistry *infraRepos.ReportRegistry,
) *InspectCommand {
	return &InspectCommand{
		projects:          projects,
		inspection:        inspection,
		discoveryRegistry: discoveryRegistry,
		reportRegistry:    reportRegistry,
	}
}

// Execute inspects every descriptor below opts.Root.
func (it *InspectCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts InspectOptions,
) (entities.Report, error) {
	if settings.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	reporter, err := it.reportRegistry.Get(settings.Output)
	if err != nil {
		return entities.Report{}, err
	}

	paths, err := discover(ctx, it.discoveryRegistry, settings, opts.Root)
	if err != nil {
		return entities.Report{}, err
	}
	logger.Infof("Inspecting %d descriptor(s) under %s", len(paths), opts.Root)

	report := it.inspectFiles(ctx, paths, settings.Concurrency)
	if writeErr := reporter.Write(opts.Output, report); writeErr != nil {
		return report, fmt.Errorf("failed to write report: %w", writeErr)
	}

	if settings.FailOnFindings && len(report.Findings) > 0 {
		return report, fmt.Errorf("%w: %d finding(s)", ErrFindingsReported, len(report.Findings))
	}
	return report, nil
}

// inspectFiles scans every path with at most concurrency files in flight.
// Each document is loaded and scanned by a single goroutine.
func (it *InspectCommand) inspectFiles(ctx context.Context, paths []string, concurrency int) entities.Report {
	report := entities.Report{Files: append([]string(nil), paths...)}
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for _, path := range paths {
		group.Go(func() error {
			findings, err := it.inspectFile(groupCtx, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.WithField("file", path).Errorf("Failed to inspect: %v", err)
				report.Errors = append(report.Errors, entities.FileError{File: path, Error: err.Error()})
				return nil
			}
			report.Findings = append(report.Findings, findings...)
			return nil
		})
	}
	_ = group.Wait()

	report.Sort()
	return report
}

func (it *InspectCommand) inspectFile(ctx context.Context, path string) ([]entities.Finding, error) {
	doc, err := it.projects.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	diagnostics := it.inspection.Scan(doc)
	findings := make([]entities.Finding, 0, len(diagnostics))
	for _, diagnostic := range diagnostics {
		findings = append(findings, entities.NewFinding(path, diagnostic))
	}
	logger.WithField("file", path).Debugf("%d finding(s)", len(findings))
	return findings, nil
}

func discover(
	ctx context.Context,
	registry *infraRepos.DiscoveryRegistry,
	settings *entities.Settings,
	root string,
) ([]string, error) {
	discovery, err := registry.Get(settings.Discovery)
	if err != nil {
		return nil, err
	}
	paths, err := discovery.Discover(ctx, root, settings.Include, settings.Exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to discover descriptors: %w", err)
	}
	return paths, nil
}
