package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/staff"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/clock"
)

// AttendanceJobs closes out each work date: staff who never checked in get
// an ABSENT record once the date is over. Absence is decided only here,
// never from a check-out alone.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleEntryRepository
	staffRepo      staff.StaffRepository
	clk            clock.Clock
	location       *time.Location
	restDay        time.Weekday
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleEntryRepository,
	staffRepo staff.StaffRepository,
	clk clock.Clock,
	location *time.Location,
	restDay time.Weekday,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		staffRepo:      staffRepo,
		clk:            clk,
		location:       location,
		restDay:        restDay,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_attendance_day", 1*time.Hour, j.CloseYesterday)
}

// CloseYesterday runs the day close for yesterday, local time. It only acts
// during the first hour after midnight; the hourly schedule makes it fire at
// most once per date.
func (j *AttendanceJobs) CloseYesterday(ctx context.Context) error {
	now := j.clk.Now().In(j.location)
	if now.Hour() != 0 {
		return nil
	}
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, j.location).AddDate(0, 0, -1)
	return j.CloseDate(ctx, yesterday)
}

// CloseDate marks absences for one closed work date across all clinics.
// Per-staff failures are logged and skipped so a partial run can be retried.
func (j *AttendanceJobs) CloseDate(ctx context.Context, date time.Time) error {
	if date.Weekday() == j.restDay {
		return nil
	}

	slog.Info("Cron: Starting attendance day close", "date", date.Format("2006-01-02"))

	clinicIDs, err := j.staffRepo.ListClinicIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list clinics: %w", err)
	}

	marked := 0
	for _, clinicID := range clinicIDs {
		members, err := j.staffRepo.ListActiveByClinic(ctx, clinicID)
		if err != nil {
			slog.Error("Cron: Failed to list staff", "clinic_id", clinicID, "error", err)
			continue
		}
		for _, member := range members {
			n, err := j.closeStaffDay(ctx, member, date)
			if err != nil {
				slog.Error("Cron: Failed to close staff day",
					"staff_id", member.ID,
					"clinic_id", clinicID,
					"date", date.Format("2006-01-02"),
					"error", err,
				)
				continue
			}
			marked += n
		}
	}

	slog.Info("Cron: Attendance day close finished", "date", date.Format("2006-01-02"), "marked_absent", marked)
	return nil
}

func (j *AttendanceJobs) closeStaffDay(ctx context.Context, member staff.Staff, date time.Time) (int, error) {
	records, err := j.attendanceRepo.ListByStaffAndDate(ctx, member.ID, member.ClinicID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to list attendance: %w", err)
	}

	if len(records) == 0 {
		// Doctors are only expected on days the published schedule has an
		// active entry for them.
		if member.IsDoctor() {
			entries, err := j.scheduleRepo.ListByDoctorAndDate(ctx, member.ID, member.ClinicID, date)
			if err != nil {
				return 0, fmt.Errorf("failed to list schedule entries: %w", err)
			}
			if !hasActiveEntry(entries) {
				return 0, nil
			}
		}

		_, err := j.attendanceRepo.Create(ctx, attendance.Attendance{
			ID:                uuid.New().String(),
			StaffID:           member.ID,
			ClinicID:          member.ClinicID,
			Date:              date,
			Status:            attendance.StatusAbsent,
			ExplanationStatus: attendance.ExplanationNone,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to create absence: %w", err)
		}
		return 1, nil
	}

	marked := 0
	for _, rec := range records {
		if rec.CheckIn != nil || rec.Status.IsProtected() || rec.Status == attendance.StatusAbsent {
			continue
		}
		rec.Status = attendance.StatusAbsent
		if err := j.attendanceRepo.Update(ctx, rec); err != nil {
			return marked, fmt.Errorf("failed to update attendance %s: %w", rec.ID, err)
		}
		marked++
	}
	return marked, nil
}

func hasActiveEntry(entries []schedule.ScheduleEntry) bool {
	for _, entry := range entries {
		if entry.Status == schedule.EntryActive {
			return true
		}
	}
	return false
}
