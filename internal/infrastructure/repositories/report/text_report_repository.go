package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// TextReportRepository renders findings as a table for terminals.
type TextReportRepository struct{}

var _ repositories.ReportRepository = (*TextReportRepository)(nil)

// NewTextReportRepository creates a TextReportRepository.
func NewTextReportRepository() repositories.ReportRepository {
	return &TextReportRepository{}
}

func (it *TextReportRepository) Format() string { return "text" }

func (it *TextReportRepository) Write(w io.Writer, report entities.Report) error {
	if len(report.Findings) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"File", "Line", "Dependency", "Version", "Property", "Fix"})
		for _, finding := range report.Findings {
			t.AppendRow(table.Row{
				relative(finding.File),
				finding.Line,
				finding.GroupID + ":" + finding.ArtifactID,
				finding.Version,
				finding.Property,
				finding.Fix,
			})
		}
		t.Render()
	}

	for _, fileErr := range report.Errors {
		if _, err := fmt.Fprintf(w, "error: %s: %s\n", relative(fileErr.File), fileErr.Error); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "(%d findings in %d files)\n", len(report.Findings), len(report.Files))
	return err
}

// relative shortens absolute paths below the working directory.
func relative(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	wd, err := filepath.Abs(".")
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
