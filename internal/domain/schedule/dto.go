package schedule

import (
	"fmt"

	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/validator"
)

// ProposedAssignment is one (doctor, clinic, room, start, end) slot inside a
// weekly proposal. Times are "15:04" strings; shape problems are reported as
// constraint violations rather than request validation failures so the
// validator can accumulate everything in one pass.
type ProposedAssignment struct {
	DoctorID  string `json:"doctor_id"`
	ClinicID  string `json:"clinic_id"`
	RoomID    string `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// WeeklyScheduleRequest is a proposed week keyed by weekday name.
type WeeklyScheduleRequest struct {
	WeekStart string                          `json:"week_start"`
	Rotation  bool                            `json:"rotation"`
	Days      map[string][]ProposedAssignment `json:"days"`
}

func (r *WeeklyScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start is required",
		})
	} else if d, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	} else if d.Weekday() != 1 { // Monday
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a Monday",
		})
	}

	for day := range r.Days {
		if _, ok := WeekdayOffset[day]; !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: fmt.Sprintf("unknown weekday key %q", day),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidationResult reports hard-constraint errors and heuristic warnings for
// a proposal. Never persisted. Valid is true iff Errors is empty; warnings
// are advisory only.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type ScheduleEntryResponse struct {
	ID         string  `json:"id"`
	DoctorID   string  `json:"doctor_id"`
	DoctorName *string `json:"doctor_name,omitempty"`
	ClinicID   string  `json:"clinic_id"`
	RoomID     string  `json:"room_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Status     string  `json:"status"`
}

type WeeklyScheduleResponse struct {
	WeekStart string                  `json:"week_start"`
	Entries   []ScheduleEntryResponse `json:"entries"`
	Warnings  []string                `json:"warnings,omitempty"`
}
