package schedule

import "time"

type EntryStatus string

const (
	// EntryActive is a published, working slot.
	EntryActive EntryStatus = "ACTIVE"
	// EntryInactive marks a slot suppressed by approved leave. The row is
	// kept for audit history, never deleted.
	EntryInactive EntryStatus = "INACTIVE"
)

// ScheduleEntry is one doctor's slot in a room on a work date.
type ScheduleEntry struct {
	ID        string
	DoctorID  string
	ClinicID  string
	RoomID    string
	Date      time.Time // work date at local midnight
	StartTime time.Time // time-of-day component only
	EndTime   time.Time
	Status    EntryStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	DoctorName *string
}

// DutyMode selects how clinic assignment rules apply per day.
type DutyMode string

const (
	// DutySingleClinic requires every assignment of a day to share one clinic.
	DutySingleClinic DutyMode = "SINGLE_CLINIC"
	// DutyFullWeek relaxes the per-day clinic rule; instead a doctor's two
	// shifts on the same day must use two different clinics.
	DutyFullWeek DutyMode = "FULL_WEEK"
)

var WeekdayKeys = []string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
}

// WeekdayOffset maps a weekday key to its offset from the week-start Monday.
var WeekdayOffset = map[string]int{
	"MONDAY":    0,
	"TUESDAY":   1,
	"WEDNESDAY": 2,
	"THURSDAY":  3,
	"FRIDAY":    4,
	"SATURDAY":  5,
	"SUNDAY":    6,
}
