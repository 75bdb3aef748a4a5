package schedule

import (
	"context"
	"time"
)

// ScheduleEntryRepository defines data access for doctor schedule entries.
type ScheduleEntryRepository interface {
	// Create persists a new entry
	Create(ctx context.Context, entry ScheduleEntry) (ScheduleEntry, error)

	// GetByID retrieves an entry
	GetByID(ctx context.Context, id string) (ScheduleEntry, error)

	// ListByDoctorAndDate retrieves a doctor's entries on a date across all
	// rooms. clinicID may be empty to search every clinic (used by the
	// double-booking cross-check).
	ListByDoctorAndDate(ctx context.Context, doctorID string, clinicID string, date time.Time) ([]ScheduleEntry, error)

	// ListByClinicAndRange retrieves entries for a clinic between two dates
	ListByClinicAndRange(ctx context.Context, clinicID string, from, to time.Time) ([]ScheduleEntry, error)

	// UpdateStatus flips an entry between ACTIVE and INACTIVE
	UpdateStatus(ctx context.Context, id string, status EntryStatus) error
}
