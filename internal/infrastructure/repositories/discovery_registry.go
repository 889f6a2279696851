package repositories

import (
	"errors"
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// ErrUnknownDiscovery is returned for a discovery name nobody registered.
var ErrUnknownDiscovery = errors.New("unknown discovery")

// DiscoveryRegistry manages all registered descriptor discovery implementations.
type DiscoveryRegistry struct {
	discoveries map[string]domainRepos.DiscoveryRepository
}

// NewDiscoveryRegistry creates an empty discovery registry.
func NewDiscoveryRegistry() *DiscoveryRegistry {
	return &DiscoveryRegistry{
		discoveries: make(map[string]domainRepos.DiscoveryRepository),
	}
}

// Register adds a discovery under its name.
func (r *DiscoveryRegistry) Register(d domainRepos.DiscoveryRepository) {
	r.discoveries[d.Name()] = d
}

// Get returns the discovery with the given name.
func (r *DiscoveryRegistry) Get(name string) (domainRepos.DiscoveryRepository, error) {
	d, ok := r.discoveries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownDiscovery, name, r.Names())
	}
	return d, nil
}

// Names returns the sorted list of registered discovery names.
func (r *DiscoveryRegistry) Names() []string {
	names := make([]string, 0, len(r.discoveries))
	for name := range r.discoveries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
