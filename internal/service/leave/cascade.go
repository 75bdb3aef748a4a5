package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/leave"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
)

// CascadeEngine walks an approved leave's date range and keeps schedule
// entries and attendance records consistent with the decision. Each day is
// its own unit of work: a failing day is logged and skipped so the cascade
// stays resumable, and every write checks the current state first so a
// re-run is a no-op.
type CascadeEngine struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleEntryRepository
	restDay        time.Weekday
}

func NewCascadeEngine(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleEntryRepository,
	restDay time.Weekday,
) *CascadeEngine {
	return &CascadeEngine{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		restDay:        restDay,
	}
}

// ApplyApproval suppresses matching schedule entries and upserts
// APPROVED_ABSENCE attendance records across the request's range.
func (e *CascadeEngine) ApplyApproval(ctx context.Context, request leave.LeaveRequest) {
	e.walk(ctx, request, e.applyDay)
}

// RevertApproval undoes ApplyApproval for a cancelled approved leave:
// entries back to ACTIVE, untouched APPROVED_ABSENCE records to ABSENT.
func (e *CascadeEngine) RevertApproval(ctx context.Context, request leave.LeaveRequest) {
	e.walk(ctx, request, e.revertDay)
}

func (e *CascadeEngine) walk(ctx context.Context, request leave.LeaveRequest, fn func(context.Context, leave.LeaveRequest, time.Time) error) {
	for day := request.StartDate; !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == e.restDay {
			continue
		}
		if err := fn(ctx, request, day); err != nil {
			slog.Error("Leave cascade day failed, skipping",
				"leave_request_id", request.ID,
				"staff_id", request.StaffID,
				"date", day.Format("2006-01-02"),
				"error", err,
			)
		}
	}
}

func (e *CascadeEngine) applyDay(ctx context.Context, request leave.LeaveRequest, day time.Time) error {
	entries, err := e.scheduleRepo.ListByDoctorAndDate(ctx, request.StaffID, request.ClinicID, day)
	if err != nil {
		return fmt.Errorf("failed to list schedule entries: %w", err)
	}
	for _, entry := range entries {
		if entry.Status != schedule.EntryActive || !e.scopeMatches(request.ShiftScope, entry) {
			continue
		}
		if err := e.scheduleRepo.UpdateStatus(ctx, entry.ID, schedule.EntryInactive); err != nil {
			return fmt.Errorf("failed to suppress schedule entry %s: %w", entry.ID, err)
		}
	}

	shift := scopeShift(request.ShiftScope)
	existing, err := e.attendanceRepo.GetByKey(ctx, request.StaffID, request.ClinicID, day, shift)
	if err != nil {
		return fmt.Errorf("failed to look up attendance: %w", err)
	}

	switch {
	case existing == nil:
		_, err := e.attendanceRepo.Create(ctx, attendance.Attendance{
			ID:                uuid.New().String(),
			StaffID:           request.StaffID,
			ClinicID:          request.ClinicID,
			Date:              day,
			Shift:             shift,
			Status:            attendance.StatusApprovedAbsence,
			ExplanationStatus: attendance.ExplanationNone,
		})
		if err != nil {
			// A record that appeared since the lookup is left for the
			// next pass; the walk is at-least-once.
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to create attendance: %w", err)
		}
	case existing.CheckIn != nil:
		// A day already worked is never converted to absence.
	case existing.Status == attendance.StatusApprovedAbsence:
		// Already in the target state.
	default:
		existing.Status = attendance.StatusApprovedAbsence
		if err := e.attendanceRepo.Update(ctx, *existing); err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}
	}
	return nil
}

func (e *CascadeEngine) revertDay(ctx context.Context, request leave.LeaveRequest, day time.Time) error {
	entries, err := e.scheduleRepo.ListByDoctorAndDate(ctx, request.StaffID, request.ClinicID, day)
	if err != nil {
		return fmt.Errorf("failed to list schedule entries: %w", err)
	}
	for _, entry := range entries {
		if entry.Status != schedule.EntryInactive || !e.scopeMatches(request.ShiftScope, entry) {
			continue
		}
		if err := e.scheduleRepo.UpdateStatus(ctx, entry.ID, schedule.EntryActive); err != nil {
			return fmt.Errorf("failed to restore schedule entry %s: %w", entry.ID, err)
		}
	}

	existing, err := e.attendanceRepo.GetByKey(ctx, request.StaffID, request.ClinicID, day, scopeShift(request.ShiftScope))
	if err != nil {
		return fmt.Errorf("failed to look up attendance: %w", err)
	}
	if existing == nil || existing.CheckIn != nil || existing.Status != attendance.StatusApprovedAbsence {
		return nil
	}

	existing.Status = attendance.StatusAbsent
	if err := e.attendanceRepo.Update(ctx, *existing); err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}

// scopeMatches reports whether a schedule entry falls inside the leave's
// shift scope. Entries starting before noon count as morning shifts.
func (e *CascadeEngine) scopeMatches(scope *leave.ShiftScope, entry schedule.ScheduleEntry) bool {
	if scope == nil || *scope == leave.ScopeFullDay {
		return true
	}
	morning := entry.StartTime.Hour() < 12
	if *scope == leave.ScopeMorning {
		return morning
	}
	return !morning
}

// scopeShift maps a leave shift scope onto the attendance shift key. Full-day
// leave produces a nil shift, the full-day attendance record.
func scopeShift(scope *leave.ShiftScope) *attendance.Shift {
	if scope == nil || *scope == leave.ScopeFullDay {
		return nil
	}
	var shift attendance.Shift
	if *scope == leave.ScopeMorning {
		shift = attendance.ShiftMorning
	} else {
		shift = attendance.ShiftAfternoon
	}
	return &shift
}
