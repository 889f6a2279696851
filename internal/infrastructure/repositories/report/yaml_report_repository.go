package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// YAMLReportRepository renders the report as YAML.
type YAMLReportRepository struct{}

var _ repositories.ReportRepository = (*YAMLReportRepository)(nil)

// NewYAMLReportRepository creates a YAMLReportRepository.
func NewYAMLReportRepository() repositories.ReportRepository {
	return &YAMLReportRepository{}
}

func (it *YAMLReportRepository) Format() string { return "yaml" }

func (it *YAMLReportRepository) Write(w io.Writer, report entities.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
