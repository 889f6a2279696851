package controllers

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomlint/internal/domain/commands"
	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

// WatchController handles the "watch" subcommand.
type WatchController struct {
	command commands.Watch
}

// NewWatchController creates a new WatchController.
func NewWatchController(command commands.Watch) *WatchController {
	return &WatchController{command: command}
}

// GetBind returns the Cobra command metadata for the watch controller.
func (it *WatchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "watch [path]",
		Short: "Re-inspect pom.xml files whenever they change",
		Long: `Inspect the tree once, then keep watching it and report findings
for every descriptor that is written. Stop with Ctrl+C.`,
	}
}

// AddFlags adds the watch-specific flags to the given Cobra command.
func (it *WatchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("watch-debounce", entities.DefaultWatchDebounce,
		"Quiet period before changed files are re-inspected")
}

// Execute watches until interrupted.
func (it *WatchController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return it.command.Execute(ctx, settings, commands.WatchOptions{
		Root:   rootArg(args),
		Output: cmd.OutOrStdout(),
	})
}
