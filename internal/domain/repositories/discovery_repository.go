package repositories

import (
	"context"
)

// DiscoveryRepository finds project descriptors below a root directory.
type DiscoveryRepository interface {
	// Name returns the discovery identifier (e.g. "filesystem", "git").
	Name() string

	// Discover returns the paths matching at least one include pattern and no
	// exclude pattern. Patterns are doublestar globs relative to root.
	Discover(ctx context.Context, root string, include, exclude []string) ([]string, error)
}
