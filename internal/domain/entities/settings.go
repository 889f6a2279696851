package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	DefaultDiscovery     = "filesystem"
	DefaultOutput        = "text"
	DefaultConcurrency   = 4
	DefaultWatchDebounce = 300 * time.Millisecond

	envPrefix = "POMLINT_"
)

// ErrConfigNotFound is returned by FindConfigFile when no file exists.
var ErrConfigNotFound = errors.New("no pomlint config file found")

var configFileNames = []string{"pomlint.yaml", "pomlint.yml", ".pomlint.yaml"}

// Settings is the runtime configuration of pomlint.
type Settings struct {
	Discovery      string        `koanf:"discovery"`
	Include        []string      `koanf:"include"`
	Exclude        []string      `koanf:"exclude"`
	Output         string        `koanf:"output"`
	Concurrency    int           `koanf:"concurrency"`
	FailOnFindings bool          `koanf:"fail_on_findings"`
	WatchDebounce  time.Duration `koanf:"watch_debounce"`
	DryRun         bool          `koanf:"dry_run"`
	Verbose        bool          `koanf:"verbose"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Discovery:     DefaultDiscovery,
		Include:       []string{"**/pom.xml"},
		Exclude:       []string{"**/target/**", "**/node_modules/**"},
		Output:        DefaultOutput,
		Concurrency:   DefaultConcurrency,
		WatchDebounce: DefaultWatchDebounce,
	}
}

// NewSettings loads settings with the precedence flags > env > file > defaults.
// An empty path skips the file layer. Only flags that were explicitly set
// override lower layers; flags may be nil.
func NewSettings(path string, flags *pflag.FlagSet) (*Settings, error) {
	k := koanf.New(".")

	defaults := DefaultSettings()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"discovery":      defaults.Discovery,
		"include":        defaults.Include,
		"exclude":        defaults.Exclude,
		"output":         defaults.Output,
		"concurrency":    defaults.Concurrency,
		"watch_debounce": defaults.WatchDebounce.String(),
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	// POMLINT_FAIL_ON_FINDINGS -> fail_on_findings
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Settings) validate() error {
	if s.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", s.Concurrency)
	}
	if len(s.Include) == 0 {
		return errors.New("include must list at least one pattern")
	}
	if s.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %s", s.WatchDebounce)
	}
	return nil
}

// FindConfigFile searches the working directory and the usual config
// locations for a pomlint config file.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config", "configs"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config"))
	}

	for _, dir := range locations {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", ErrConfigNotFound
}
