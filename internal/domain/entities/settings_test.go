//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pomlint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should return the defaults when nothing is configured", func(t *testing.T) {
		t.Parallel()

		// given
		expected := entities.DefaultSettings()

		// when
		settings, err := entities.NewSettings("", nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, settings)
	})

	t.Run("should read values from the config file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `discovery: git
include:
  - "modules/**/pom.xml"
output: json
concurrency: 2
fail_on_findings: true
watch_debounce: 1s
`)

		// when
		settings, err := entities.NewSettings(path, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "git", settings.Discovery)
		assert.Equal(t, []string{"modules/**/pom.xml"}, settings.Include)
		assert.Equal(t, "json", settings.Output)
		assert.Equal(t, 2, settings.Concurrency)
		assert.True(t, settings.FailOnFindings)
		assert.Equal(t, time.Second, settings.WatchDebounce)
		assert.Equal(t, entities.DefaultSettings().Exclude, settings.Exclude)
	})

	t.Run("should let explicitly set flags override the config file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "output: json\nconcurrency: 2\n")
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("output", entities.DefaultOutput, "")
		flags.Int("concurrency", entities.DefaultConcurrency, "")
		flags.Bool("dry-run", false, "")
		require.NoError(t, flags.Parse([]string{"--output", "yaml", "--dry-run"}))

		// when
		settings, err := entities.NewSettings(path, flags)

		// then
		require.NoError(t, err)
		assert.Equal(t, "yaml", settings.Output)
		assert.Equal(t, 2, settings.Concurrency)
		assert.True(t, settings.DryRun)
	})

	t.Run("should fail when the concurrency is not positive", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "concurrency: 0\n")

		// when
		settings, err := entities.NewSettings(path, nil)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "concurrency")
	})

	t.Run("should fail when the config file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path, nil)

		// then
		require.Error(t, err)
	})
}

func TestNewSettingsFromEnvironment(t *testing.T) {
	t.Run("should let environment variables override the config file", func(t *testing.T) {
		// given
		path := writeConfig(t, "output: json\nfail_on_findings: false\n")
		t.Setenv("POMLINT_OUTPUT", "yaml")
		t.Setenv("POMLINT_FAIL_ON_FINDINGS", "true")

		// when
		settings, err := entities.NewSettings(path, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "yaml", settings.Output)
		assert.True(t, settings.FailOnFindings)
	})
}
