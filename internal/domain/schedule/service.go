package schedule

import (
	"context"
	"time"
)

// ScheduleService defines business logic for weekly doctor schedules.
type ScheduleService interface {
	// ValidateSchedule runs the hard-constraint and heuristic validators
	// without persisting anything
	ValidateSchedule(ctx context.Context, req WeeklyScheduleRequest) (ValidationResult, error)

	// CreateWeeklySchedule validates and, only when no hard constraint is
	// violated, persists the whole proposal. Partial commit never happens.
	CreateWeeklySchedule(ctx context.Context, req WeeklyScheduleRequest) (WeeklyScheduleResponse, error)

	// ListWeek retrieves the persisted entries of a clinic's week
	ListWeek(ctx context.Context, clinicID string, weekStart time.Time) ([]ScheduleEntryResponse, error)
}
