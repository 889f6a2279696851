package repositories

import (
	"io"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

// ReportRepository renders an inspection report in one output format.
type ReportRepository interface {
	Format() string
	Write(w io.Writer, report entities.Report) error
}
