package repositories

import (
	"errors"
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// ErrUnknownFormat is returned for an output format nobody registered.
var ErrUnknownFormat = errors.New("unknown output format")

// ReportFactory is a constructor function that creates a ReportRepository.
type ReportFactory func() domainRepos.ReportRepository

// ReportRegistry manages all registered report formats.
type ReportRegistry struct {
	reporters map[string]ReportFactory
}

// NewReportRegistry creates an empty report registry.
func NewReportRegistry() *ReportRegistry {
	return &ReportRegistry{
		reporters: make(map[string]ReportFactory),
	}
}

// Register adds a report factory under the given format (e.g. "json").
func (r *ReportRegistry) Register(format string, factory ReportFactory) {
	r.reporters[format] = factory
}

// Get returns a reporter for the given format.
func (r *ReportRegistry) Get(format string) (domainRepos.ReportRepository, error) {
	factory, ok := r.reporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFormat, format, r.Formats())
	}
	return factory(), nil
}

// Formats returns the sorted list of registered formats.
func (r *ReportRegistry) Formats() []string {
	formats := make([]string, 0, len(r.reporters))
	for format := range r.reporters {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
