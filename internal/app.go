package internal

import (
	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/infrastructure/controllers"
)

// AppInternal holds everything the CLI needs after dependency injection.
type AppInternal struct {
	controllers       []entities.Controller
	inspectController *controllers.InspectController
}

// NewAppInternal creates the AppInternal from the registered controllers.
func NewAppInternal(
	registered *[]entities.Controller,
	inspectController *controllers.InspectController,
) *AppInternal {
	return &AppInternal{
		controllers:       *registered,
		inspectController: inspectController,
	}
}

// GetControllers returns the controllers bound to subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetInspectController returns the controller behind the bare root command.
func (it *AppInternal) GetInspectController() *controllers.InspectController {
	return it.inspectController
}
