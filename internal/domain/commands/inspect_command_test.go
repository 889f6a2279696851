//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pomlint/internal/domain/commands"
	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories"
	"github.com/rios0rios0/pomlint/test/domain/entitybuilders"
)

func TestInspectCommand(t *testing.T) {
	t.Parallel()

	t.Run("should report one finding per literal version across files", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(map[string]string{
			"b/pom.xml": entitybuilders.NewPomBuilder().
				WithDependency("org.example", "core", "1.2.3").
				WithManagedDependency("org.example", "bom", "7").
				BuildXML(),
			"a/pom.xml": entitybuilders.NewPomBuilder().
				WithDependency("org.example", "api", "${project.version}").
				BuildXML(),
		})
		settings := entities.DefaultSettings()

		// when
		report, err := f.inspectCommand().Execute(
			context.Background(), settings, commands.InspectOptions{Root: ".", Output: &bytes.Buffer{}},
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"a/pom.xml", "b/pom.xml"}, report.Files)
		require.Len(t, report.Findings, 2)
		assert.Equal(t, "core.version", report.Findings[0].Property)
		assert.Equal(t, "bom.version", report.Findings[1].Property)
		assert.True(t, report.Findings[1].Managed)
		require.Len(t, f.reporter.Reports, 1)
		assert.Equal(t, report, f.reporter.Reports[0])
		assert.Equal(t, []string{"."}, f.discovery.Roots)
	})

	t.Run("should record unreadable files and keep going", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(map[string]string{
			"broken/pom.xml": "<project><dependencies attr=></dependencies></project>",
			"ok/pom.xml":     entitybuilders.NewPomBuilder().WithDependency("g", "core", "1").BuildXML(),
		})

		// when
		report, err := f.inspectCommand().Execute(
			context.Background(), entities.DefaultSettings(), commands.InspectOptions{Root: ".", Output: &bytes.Buffer{}},
		)

		// then
		require.NoError(t, err)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, "broken/pom.xml", report.Errors[0].File)
		assert.Len(t, report.Findings, 1)
	})

	t.Run("should fail when findings exist and the settings ask for it", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(map[string]string{
			"pom.xml": entitybuilders.NewPomBuilder().WithDependency("g", "core", "1").BuildXML(),
		})
		settings := entities.DefaultSettings()
		settings.FailOnFindings = true

		// when
		report, err := f.inspectCommand().Execute(
			context.Background(), settings, commands.InspectOptions{Root: ".", Output: &bytes.Buffer{}},
		)

		// then
		require.ErrorIs(t, err, commands.ErrFindingsReported)
		assert.Len(t, report.Findings, 1)
		assert.Len(t, f.reporter.Reports, 1)
	})

	t.Run("should not fail on a clean tree even when asked to", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(map[string]string{
			"pom.xml": entitybuilders.NewPomBuilder().WithUnversionedDependency("g", "core").BuildXML(),
		})
		settings := entities.DefaultSettings()
		settings.FailOnFindings = true

		// when
		report, err := f.inspectCommand().Execute(
			context.Background(), settings, commands.InspectOptions{Root: ".", Output: &bytes.Buffer{}},
		)

		// then
		require.NoError(t, err)
		assert.Empty(t, report.Findings)
	})

	t.Run("should fail for an unknown output format before discovering", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(map[string]string{})
		settings := entities.DefaultSettings()
		settings.Output = "xml"

		// when
		_, err := f.inspectCommand().Execute(
			context.Background(), settings, commands.InspectOptions{Root: ".", Output: &bytes.Buffer{}},
		)

		// then
		require.ErrorIs(t, err, repositories.ErrUnknownFormat)
		assert.Empty(t, f.discovery.Roots)
	})

	t.Run("should fail when discovery fails", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(map[string]string{})
		f.discovery.DiscoverErr = errors.New("boom")

		// when
		_, err := f.inspectCommand().Execute(
			context.Background(), entities.DefaultSettings(), commands.InspectOptions{Root: ".", Output: &bytes.Buffer{}},
		)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
		assert.Empty(t, f.reporter.Reports)
	})
}
