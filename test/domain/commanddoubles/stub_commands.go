//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pomlint/internal/domain/commands"
	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

// StubInspectCommand is a stub implementation of commands.Inspect.
type StubInspectCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           entities.Report
	LastSettings     *entities.Settings
	LastOpts         commands.InspectOptions
}

var _ commands.Inspect = (*StubInspectCommand)(nil)

func (s *StubInspectCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.InspectOptions,
) (entities.Report, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}

// StubFixCommand is a stub implementation of commands.Fix.
type StubFixCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Results          []entities.FixResult
	LastSettings     *entities.Settings
	LastOpts         commands.FixOptions
}

var _ commands.Fix = (*StubFixCommand)(nil)

func (s *StubFixCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.FixOptions,
) ([]entities.FixResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Results, s.ExecuteErr
}
