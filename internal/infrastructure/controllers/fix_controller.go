package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomlint/internal/domain/commands"
	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

// FixController handles the "fix" subcommand.
type FixController struct {
	command commands.Fix
}

// NewFixController creates a new FixController.
func NewFixController(command commands.Fix) *FixController {
	return &FixController{command: command}
}

// GetBind returns the Cobra command metadata for the fix controller.
func (it *FixController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "fix [path]",
		Short: "Extract literal dependency versions into properties",
		Long: `Rewrite every literal dependency version to a ${<artifactId>.version}
reference and append the matching property to <properties>.

Files without a <properties> block still get the version rewritten,
but no property is created for it.`,
	}
}

// AddFlags adds the fix-specific flags to the given Cobra command.
func (it *FixController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Show what would be done without writing files")
}

// Execute runs the fixes.
func (it *FixController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(cmd.Context(), settings, commands.FixOptions{Root: rootArg(args)})
	return err
}
