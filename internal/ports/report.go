package ports

import "github.com/Kappibw/scheduling/internal/domain"

// ReportStore persists setup-run reports.
type ReportStore interface {
	// SaveReport writes the report and returns its assigned run ID.
	SaveReport(report domain.SetupReport) (string, error)
}
