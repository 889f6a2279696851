package controllers

import (
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

// loadSettings resolves the config file (--config or auto-detected) and layers
// env vars and explicitly set flags on top of it.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		switch {
		case err == nil:
			configPath = found
		case errors.Is(err, entities.ErrConfigNotFound):
			logger.Debug("No config file found, using defaults")
		default:
			return nil, err
		}
	}
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
	}

	return entities.NewSettings(configPath, cmd.Flags())
}

func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
