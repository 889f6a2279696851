package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomlint/internal/domain/commands"
	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

// InspectController handles the "inspect" subcommand and the bare root command.
type InspectController struct {
	command commands.Inspect
}

// NewInspectController creates a new InspectController.
func NewInspectController(command commands.Inspect) *InspectController {
	return &InspectController{command: command}
}

// GetBind returns the Cobra command metadata for the inspect controller.
func (it *InspectController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "inspect [path]",
		Short: "Report dependency versions that are not property placeholders",
		Long: `Scan pom.xml files for dependency versions written as literals
instead of ${...} property references.

Each finding can be fixed with "pomlint fix", which moves the
literal into <properties> as <artifactId>.version.`,
	}
}

// AddFlags adds the inspect-specific flags to the given Cobra command.
func (it *InspectController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("fail-on-findings", false, "Exit with an error when any finding is reported")
}

// Execute runs the inspection.
func (it *InspectController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(cmd.Context(), settings, commands.InspectOptions{
		Root:   rootArg(args),
		Output: cmd.OutOrStdout(),
	})
	return err
}
