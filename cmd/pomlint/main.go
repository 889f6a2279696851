package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomlint/internal"
	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/infrastructure/controllers"
)

func buildRootCommand(inspectController *controllers.InspectController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "pomlint [path]",
		Short: "Find and extract literal dependency versions in pom.xml files",
		Long: `Scan Maven project descriptors for dependency versions written as
literal values instead of ${...} property placeholders, and move them
into the <properties> block.

Usage modes:
  pomlint .                 Inspect the current directory (same as "inspect")
  pomlint fix /path/to/repo Rewrite literal versions to properties
  pomlint watch .           Re-inspect descriptors as they change`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			return inspectController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect pomlint.yaml)")
	cmd.PersistentFlags().StringP("output", "o", entities.DefaultOutput,
		"Report format (text, json, yaml)")
	cmd.PersistentFlags().String("discovery", entities.DefaultDiscovery,
		"How descriptors are found (filesystem, git)")
	cmd.PersistentFlags().Int("concurrency", entities.DefaultConcurrency,
		"Number of files processed in parallel")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	inspectController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetInspectController())
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'pomlint': %s", err)
	}
}
