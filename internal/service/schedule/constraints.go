package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/validator"
)

// proposedSlot is a ProposedAssignment with its times resolved onto the
// concrete work date.
type proposedSlot struct {
	schedule.ProposedAssignment
	Day   string
	Date  time.Time
	Start time.Time
	End   time.Time
}

// checkConstraints runs every hard rule over the proposal, accumulating all
// violations instead of stopping at the first. It returns the violation list
// together with the slots that parsed cleanly, so callers can persist or
// score them without reparsing.
func (s *ScheduleServiceImpl) checkConstraints(ctx context.Context, weekStart time.Time, req schedule.WeeklyScheduleRequest) ([]string, []proposedSlot) {
	var violations []string
	var slots []proposedSlot

	for _, day := range schedule.WeekdayKeys {
		assignments := req.Days[day]
		if len(assignments) == 0 {
			violations = append(violations, fmt.Sprintf("%s has no assignments", day))
			continue
		}

		date := weekStart.AddDate(0, 0, schedule.WeekdayOffset[day])
		clinics := make(map[string]bool)
		byDoctor := make(map[string][]proposedSlot)

		for i, a := range assignments {
			slot, err := resolveSlot(day, date, a)
			if err != nil {
				violations = append(violations, fmt.Sprintf("%s assignment %d (doctor %s): %v", day, i+1, a.DoctorID, err))
				continue
			}
			slots = append(slots, slot)
			clinics[a.ClinicID] = true
			byDoctor[a.DoctorID] = append(byDoctor[a.DoctorID], slot)
		}

		if s.cfg.RequiredDoctorsPerDay > 0 && len(byDoctor) != s.cfg.RequiredDoctorsPerDay {
			violations = append(violations, fmt.Sprintf(
				"%s requires exactly %d distinct doctors, proposal has %d",
				day, s.cfg.RequiredDoctorsPerDay, len(byDoctor),
			))
		}

		violations = append(violations, s.checkClinicRule(day, clinics, byDoctor)...)
		violations = append(violations, checkDoctorOverlaps(day, byDoctor)...)
		violations = append(violations, s.checkPersistedConflicts(ctx, day, date, byDoctor)...)
	}

	return violations, slots
}

func resolveSlot(day string, date time.Time, a schedule.ProposedAssignment) (proposedSlot, error) {
	if validator.IsEmpty(a.DoctorID) || validator.IsEmpty(a.ClinicID) || validator.IsEmpty(a.RoomID) {
		return proposedSlot{}, fmt.Errorf("doctor_id, clinic_id and room_id are required")
	}
	start, ok := validator.IsValidTimeOfDay(a.StartTime)
	if !ok {
		return proposedSlot{}, fmt.Errorf("start_time %q is not a valid HH:MM time", a.StartTime)
	}
	end, ok := validator.IsValidTimeOfDay(a.EndTime)
	if !ok {
		return proposedSlot{}, fmt.Errorf("end_time %q is not a valid HH:MM time", a.EndTime)
	}
	if !start.Before(end) {
		return proposedSlot{}, fmt.Errorf("start_time %s must be before end_time %s", a.StartTime, a.EndTime)
	}
	return proposedSlot{
		ProposedAssignment: a,
		Day:                day,
		Date:               date,
		Start:              onDate(date, start),
		End:                onDate(date, end),
	}, nil
}

// checkClinicRule applies the duty-mode clinic rule for one day.
func (s *ScheduleServiceImpl) checkClinicRule(day string, clinics map[string]bool, byDoctor map[string][]proposedSlot) []string {
	var violations []string

	if s.cfg.DutyMode == schedule.DutySingleClinic {
		if len(clinics) > 1 {
			violations = append(violations, fmt.Sprintf(
				"%s references %d clinics, single-clinic duty allows one per day", day, len(clinics),
			))
		}
		return violations
	}

	// FULL_WEEK: a doctor's same-day shifts must be at different clinics.
	for _, doctorID := range sortedKeys(byDoctor) {
		seen := make(map[string]bool)
		for _, slot := range byDoctor[doctorID] {
			if seen[slot.ClinicID] {
				violations = append(violations, fmt.Sprintf(
					"doctor %s has two %s shifts at clinic %s, full-week duty requires different clinics",
					doctorID, day, slot.ClinicID,
				))
				break
			}
			seen[slot.ClinicID] = true
		}
	}
	return violations
}

// checkDoctorOverlaps flags duplicate or overlapping same-day slots.
func checkDoctorOverlaps(day string, byDoctor map[string][]proposedSlot) []string {
	var violations []string
	for _, doctorID := range sortedKeys(byDoctor) {
		doctorSlots := byDoctor[doctorID]
		sort.Slice(doctorSlots, func(i, j int) bool { return doctorSlots[i].Start.Before(doctorSlots[j].Start) })
		for i := 1; i < len(doctorSlots); i++ {
			if doctorSlots[i].Start.Before(doctorSlots[i-1].End) {
				violations = append(violations, fmt.Sprintf(
					"doctor %s is double-booked on %s (%s-%s overlaps %s-%s)",
					doctorID, day,
					doctorSlots[i-1].StartTime, doctorSlots[i-1].EndTime,
					doctorSlots[i].StartTime, doctorSlots[i].EndTime,
				))
			}
		}
	}
	return violations
}

// checkPersistedConflicts cross-checks proposed slots against active entries
// already in the store, across every clinic.
func (s *ScheduleServiceImpl) checkPersistedConflicts(ctx context.Context, day string, date time.Time, byDoctor map[string][]proposedSlot) []string {
	var violations []string
	for _, doctorID := range sortedKeys(byDoctor) {
		existing, err := s.scheduleRepo.ListByDoctorAndDate(ctx, doctorID, "", date)
		if err != nil {
			violations = append(violations, fmt.Sprintf(
				"doctor %s on %s: could not check existing entries: %v", doctorID, day, err,
			))
			continue
		}
		for _, entry := range existing {
			if entry.Status != schedule.EntryActive {
				continue
			}
			entryStart := onDate(date, entry.StartTime)
			entryEnd := onDate(date, entry.EndTime)
			for _, slot := range byDoctor[doctorID] {
				if slot.Start.Before(entryEnd) && entryStart.Before(slot.End) {
					violations = append(violations, fmt.Sprintf(
						"doctor %s is already scheduled on %s at clinic %s from %s to %s",
						doctorID, day, entry.ClinicID,
						entry.StartTime.Format("15:04"), entry.EndTime.Format("15:04"),
					))
					break
				}
			}
		}
	}
	return violations
}

func onDate(date, timeOfDay time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0, date.Location())
}

func sortedKeys(m map[string][]proposedSlot) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
