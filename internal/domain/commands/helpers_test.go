//go:build unit

package commands_test

import (
	"github.com/rios0rios0/pomlint/internal/domain/commands"
	"github.com/rios0rios0/pomlint/internal/domain/entities"
	domainRepos "github.com/rios0rios0/pomlint/internal/domain/repositories"
	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories"
	"github.com/rios0rios0/pomlint/test/infrastructure/repositorydoubles"
)

type fixture struct {
	projects  *repositorydoubles.StubProjectRepository
	discovery *repositorydoubles.SpyDiscoveryRepository
	reporter  *repositorydoubles.SpyReportRepository
	discovers *repositories.DiscoveryRegistry
	reports   *repositories.ReportRegistry
}

func newFixture(files map[string]string) *fixture {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}

	f := &fixture{
		projects:  repositorydoubles.NewStubProjectRepository(files),
		discovery: &repositorydoubles.SpyDiscoveryRepository{DiscoveryName: entities.DefaultDiscovery, Paths: paths},
		reporter:  &repositorydoubles.SpyReportRepository{FormatName: entities.DefaultOutput},
		discovers: repositories.NewDiscoveryRegistry(),
		reports:   repositories.NewReportRegistry(),
	}
	f.discovers.Register(f.discovery)
	f.reports.Register(entities.DefaultOutput, func() domainRepos.ReportRepository { return f.reporter })
	return f
}

func (f *fixture) inspectCommand() *commands.InspectCommand {
	return commands.NewInspectCommand(f.projects, entities.NewExtractVersionInspection(), f.discovers, f.reports)
}

func (f *fixture) fixCommand() *commands.FixCommand {
	return commands.NewFixCommand(f.projects, entities.NewExtractVersionInspection(), f.discovers)
}
