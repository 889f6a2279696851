package report

import (
	"encoding/json"
	"io"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// JSONReportRepository renders the report as indented JSON.
type JSONReportRepository struct{}

var _ repositories.ReportRepository = (*JSONReportRepository)(nil)

// NewJSONReportRepository creates a JSONReportRepository.
func NewJSONReportRepository() repositories.ReportRepository {
	return &JSONReportRepository{}
}

func (it *JSONReportRepository) Format() string { return "json" }

func (it *JSONReportRepository) Write(w io.Writer, report entities.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
