//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// SpyDiscoveryRepository implements repositories.DiscoveryRepository as a configurable spy.
type SpyDiscoveryRepository struct {
	// --- identity ---
	DiscoveryName string

	// --- Discover ---
	Paths       []string
	DiscoverErr error
	Roots       []string
	Includes    [][]string
	Excludes    [][]string
}

var _ repositories.DiscoveryRepository = (*SpyDiscoveryRepository)(nil)

func (d *SpyDiscoveryRepository) Name() string { return d.DiscoveryName }

func (d *SpyDiscoveryRepository) Discover(
	_ context.Context, root string, include, exclude []string,
) ([]string, error) {
	d.Roots = append(d.Roots, root)
	d.Includes = append(d.Includes, include)
	d.Excludes = append(d.Excludes, exclude)
	return d.Paths, d.DiscoverErr
}
