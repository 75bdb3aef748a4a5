package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/staff"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/clock"
	"github.com/sunshine-dental/clinic-backend-go/internal/repository/inmemory"
)

type jobFixture struct {
	jobs           *AttendanceJobs
	attendanceRepo *inmemory.AttendanceRepository
	scheduleRepo   *inmemory.ScheduleEntryRepository
}

func newJobFixture(members ...staff.Staff) jobFixture {
	attendanceRepo := inmemory.NewAttendanceRepository()
	scheduleRepo := inmemory.NewScheduleEntryRepository()
	staffRepo := inmemory.NewStaffRepository(members...)
	clk := clock.Fixed{Instant: time.Date(2024, 3, 5, 0, 10, 0, 0, time.UTC)}
	return jobFixture{
		jobs:           NewAttendanceJobs(attendanceRepo, scheduleRepo, staffRepo, clk, time.UTC, time.Sunday),
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
	}
}

func nurse() staff.Staff {
	return staff.Staff{ID: "nurse-1", ClinicID: "clinic-1", Role: staff.RoleNurse, IsActive: true}
}

func doctor() staff.Staff {
	return staff.Staff{ID: "doc-1", ClinicID: "clinic-1", Role: staff.RoleDoctor, IsActive: true}
}

func TestCloseDate_MarksMissingStaffAbsent(t *testing.T) {
	t.Parallel()
	f := newJobFixture(nurse())

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.jobs.CloseDate(context.Background(), monday))

	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "nurse-1", "clinic-1", monday)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)
	assert.Nil(t, records[0].CheckIn)
}

func TestCloseDate_SkipsRestDay(t *testing.T) {
	t.Parallel()
	f := newJobFixture(nurse())

	sunday := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.jobs.CloseDate(context.Background(), sunday))

	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "nurse-1", "clinic-1", sunday)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCloseDate_DoctorWithoutScheduleIsNotAbsent(t *testing.T) {
	t.Parallel()
	f := newJobFixture(doctor())

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.jobs.CloseDate(context.Background(), monday))

	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", monday)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCloseDate_DoctorWithActiveEntryIsAbsent(t *testing.T) {
	t.Parallel()
	f := newJobFixture(doctor())

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	_, err := f.scheduleRepo.Create(context.Background(), schedule.ScheduleEntry{
		ID:        "entry-1",
		DoctorID:  "doc-1",
		ClinicID:  "clinic-1",
		RoomID:    "room-1",
		Date:      monday,
		StartTime: time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC),
		Status:    schedule.EntryActive,
	})
	require.NoError(t, err)

	require.NoError(t, f.jobs.CloseDate(context.Background(), monday))

	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", monday)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)
}

func TestCloseDate_ProtectedRecordsUntouched(t *testing.T) {
	t.Parallel()
	f := newJobFixture(nurse())

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	_, err := f.attendanceRepo.Create(context.Background(), attendance.Attendance{
		ID:       "att-1",
		StaffID:  "nurse-1",
		ClinicID: "clinic-1",
		Date:     monday,
		Status:   attendance.StatusApprovedAbsence,
	})
	require.NoError(t, err)

	require.NoError(t, f.jobs.CloseDate(context.Background(), monday))

	record, err := f.attendanceRepo.GetByID(context.Background(), "att-1", "clinic-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusApprovedAbsence, record.Status)
}

func TestCloseDate_CheckedInStaffUntouched(t *testing.T) {
	t.Parallel()
	f := newJobFixture(nurse())

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	checkIn := monday.Add(8 * time.Hour)
	_, err := f.attendanceRepo.Create(context.Background(), attendance.Attendance{
		ID:       "att-1",
		StaffID:  "nurse-1",
		ClinicID: "clinic-1",
		Date:     monday,
		CheckIn:  &checkIn,
		Status:   attendance.StatusOnTime,
	})
	require.NoError(t, err)

	require.NoError(t, f.jobs.CloseDate(context.Background(), monday))

	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "nurse-1", "clinic-1", monday)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusOnTime, records[0].Status)
}

func TestCloseYesterday_OnlyActsAfterMidnight(t *testing.T) {
	t.Parallel()

	attendanceRepo := inmemory.NewAttendanceRepository()
	scheduleRepo := inmemory.NewScheduleEntryRepository()
	staffRepo := inmemory.NewStaffRepository(nurse())
	clk := clock.Fixed{Instant: time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)}
	jobs := NewAttendanceJobs(attendanceRepo, scheduleRepo, staffRepo, clk, time.UTC, time.Sunday)

	require.NoError(t, jobs.CloseYesterday(context.Background()))

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	records, err := attendanceRepo.ListByStaffAndDate(context.Background(), "nurse-1", "clinic-1", monday)
	require.NoError(t, err)
	assert.Empty(t, records)
}
