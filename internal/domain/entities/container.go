package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Settings are not registered: they depend on the config path and flags known
// only to the controllers.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewExtractVersionInspection); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ExtractVersionInspection) Inspection {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
