package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/pomlint/internal/domain/repositories"
	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories/discovery"
	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories/pom"
	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories/report"
	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories/watcher"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register discovery registry with every discovery strategy
	if err := container.Provide(func() *DiscoveryRegistry {
		reg := NewDiscoveryRegistry()
		reg.Register(discovery.NewFilesystemDiscoveryRepository())
		reg.Register(discovery.NewGitDiscoveryRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register report registry with all output formats
	if err := container.Provide(func() *ReportRegistry {
		reg := NewReportRegistry()
		reg.Register("text", report.NewTextReportRepository)
		reg.Register("json", report.NewJSONReportRepository)
		reg.Register("yaml", report.NewYAMLReportRepository)
		return reg
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func() domainRepos.ProjectRepository {
		return pom.NewProjectRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.WatcherRepository {
		return watcher.NewFSNotifyWatcherRepository()
	}); err != nil {
		return err
	}

	return nil
}
