//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// SpyReportRepository implements repositories.ReportRepository and keeps
// every report it was asked to write.
type SpyReportRepository struct {
	FormatName string
	WriteErr   error
	Reports    []entities.Report
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (r *SpyReportRepository) Format() string { return r.FormatName }

func (r *SpyReportRepository) Write(_ io.Writer, report entities.Report) error {
	r.Reports = append(r.Reports, report)
	return r.WriteErr
}
