package attendance

import (
	"context"
	"time"

	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
)

// CalculateStatus compares the check-in moment against the expected shift
// start. Checking in exactly at the expected start still counts as on time.
func CalculateStatus(checkIn, expectedStart time.Time) attendance.Status {
	if checkIn.After(expectedStart) {
		return attendance.StatusLate
	}
	return attendance.StatusOnTime
}

// deriveShift picks the shift for a check-in without an explicit one.
// Local noon is the cutover between MORNING and AFTERNOON.
func deriveShift(now time.Time) attendance.Shift {
	if now.Hour() < 12 {
		return attendance.ShiftMorning
	}
	return attendance.ShiftAfternoon
}

// entryShift classifies a schedule entry into a shift by its start time.
func entryShift(e schedule.ScheduleEntry) attendance.Shift {
	if e.StartTime.Hour() < 12 {
		return attendance.ShiftMorning
	}
	return attendance.ShiftAfternoon
}

// expectedStart resolves the expected shift start for a staff member on a
// work date. Doctors with an active schedule entry for the shift use that
// entry's start time; everyone else falls back to the configured default.
func (s *AttendanceServiceImpl) expectedStart(ctx context.Context, staffID, clinicID string, date time.Time, shift attendance.Shift) (time.Time, *float64) {
	entries, err := s.scheduleRepo.ListByDoctorAndDate(ctx, staffID, clinicID, date)
	if err == nil {
		for _, e := range entries {
			if e.Status != schedule.EntryActive || entryShift(e) != shift {
				continue
			}
			start := time.Date(date.Year(), date.Month(), date.Day(),
				e.StartTime.Hour(), e.StartTime.Minute(), 0, 0, date.Location())
			hours := e.EndTime.Sub(e.StartTime).Hours()
			return start, &hours
		}
	}

	hm, _ := time.Parse("15:04", s.cfg.DefaultStartTime)
	start := time.Date(date.Year(), date.Month(), date.Day(),
		hm.Hour(), hm.Minute(), 0, 0, date.Location())
	return start, nil
}
