package report

import "context"

// ReportService derives read-only attendance summaries. It owns no state and
// reuses the attendance status vocabulary.
type ReportService interface {
	DailySummary(ctx context.Context, clinicID string, date string) (DailySummaryResponse, error)
	MonthlySummary(ctx context.Context, staffID string, clinicID string, year int, month int) (MonthlySummaryResponse, error)
}
