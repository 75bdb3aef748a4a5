package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/leave"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	"github.com/sunshine-dental/clinic-backend-go/internal/repository/inmemory"
)

type cascadeFixture struct {
	engine         *CascadeEngine
	attendanceRepo *inmemory.AttendanceRepository
	scheduleRepo   *inmemory.ScheduleEntryRepository
}

func newCascadeFixture() cascadeFixture {
	attendanceRepo := inmemory.NewAttendanceRepository()
	scheduleRepo := inmemory.NewScheduleEntryRepository()
	return cascadeFixture{
		engine:         NewCascadeEngine(attendanceRepo, scheduleRepo, time.Sunday),
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
	}
}

func approvedRequest(start, end time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        "leave-1",
		StaffID:   "doc-1",
		ClinicID:  "clinic-1",
		StartDate: start,
		EndDate:   end,
		LeaveType: "ANNUAL",
		Status:    leave.LeaveStatusApproved,
	}
}

func (f cascadeFixture) addEntry(t *testing.T, id string, date time.Time, startHour int) {
	t.Helper()
	_, err := f.scheduleRepo.Create(context.Background(), schedule.ScheduleEntry{
		ID:        id,
		DoctorID:  "doc-1",
		ClinicID:  "clinic-1",
		RoomID:    "room-1",
		Date:      date,
		StartTime: time.Date(0, 1, 1, startHour, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, startHour+4, 0, 0, 0, time.UTC),
		Status:    schedule.EntryActive,
	})
	require.NoError(t, err)
}

func TestApplyApproval_TwoDayRange(t *testing.T) {
	t.Parallel()
	f := newCascadeFixture()

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	f.addEntry(t, "entry-mon", monday, 8)
	f.addEntry(t, "entry-tue", tuesday, 8)

	f.engine.ApplyApproval(context.Background(), approvedRequest(monday, tuesday))

	for _, day := range []time.Time{monday, tuesday} {
		records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", day)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, attendance.StatusApprovedAbsence, records[0].Status)
		assert.Nil(t, records[0].Shift)
	}

	for _, id := range []string{"entry-mon", "entry-tue"} {
		entry, err := f.scheduleRepo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, schedule.EntryInactive, entry.Status)
	}
}

func TestApplyApproval_SkipsRestDay(t *testing.T) {
	t.Parallel()
	f := newCascadeFixture()

	friday := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	f.engine.ApplyApproval(context.Background(), approvedRequest(friday, monday))

	sunday := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", sunday)
	require.NoError(t, err)
	assert.Empty(t, records)

	for _, day := range []time.Time{friday, friday.AddDate(0, 0, 1), monday} {
		records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", day)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	}
}

func TestApplyApproval_NeverOverwritesCheckedInDay(t *testing.T) {
	t.Parallel()
	f := newCascadeFixture()

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	checkIn := monday.Add(8 * time.Hour)
	shift := attendance.ShiftMorning
	_, err := f.attendanceRepo.Create(context.Background(), attendance.Attendance{
		ID:       "att-1",
		StaffID:  "doc-1",
		ClinicID: "clinic-1",
		Date:     monday,
		Shift:    &shift,
		CheckIn:  &checkIn,
		Status:   attendance.StatusOnTime,
	})
	require.NoError(t, err)

	f.engine.ApplyApproval(context.Background(), approvedRequest(monday, monday))

	record, err := f.attendanceRepo.GetByID(context.Background(), "att-1", "clinic-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, record.Status)
}

func TestApplyApproval_Idempotent(t *testing.T) {
	t.Parallel()
	f := newCascadeFixture()

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	f.addEntry(t, "entry-mon", monday, 8)
	request := approvedRequest(monday, monday)

	f.engine.ApplyApproval(context.Background(), request)
	f.engine.ApplyApproval(context.Background(), request)

	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", monday)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusApprovedAbsence, records[0].Status)

	entry, err := f.scheduleRepo.GetByID(context.Background(), "entry-mon")
	require.NoError(t, err)
	assert.Equal(t, schedule.EntryInactive, entry.Status)
}

func TestApplyApproval_MorningScopeLeavesAfternoonAlone(t *testing.T) {
	t.Parallel()
	f := newCascadeFixture()

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	f.addEntry(t, "entry-am", monday, 8)
	f.addEntry(t, "entry-pm", monday, 13)

	scope := leave.ScopeMorning
	request := approvedRequest(monday, monday)
	request.ShiftScope = &scope

	f.engine.ApplyApproval(context.Background(), request)

	am, err := f.scheduleRepo.GetByID(context.Background(), "entry-am")
	require.NoError(t, err)
	assert.Equal(t, schedule.EntryInactive, am.Status)

	pm, err := f.scheduleRepo.GetByID(context.Background(), "entry-pm")
	require.NoError(t, err)
	assert.Equal(t, schedule.EntryActive, pm.Status)

	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", monday)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Shift)
	assert.Equal(t, attendance.ShiftMorning, *records[0].Shift)
}

func TestRevertApproval_RestoresState(t *testing.T) {
	t.Parallel()
	f := newCascadeFixture()

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	f.addEntry(t, "entry-mon", monday, 8)
	request := approvedRequest(monday, monday)

	f.engine.ApplyApproval(context.Background(), request)
	f.engine.RevertApproval(context.Background(), request)

	entry, err := f.scheduleRepo.GetByID(context.Background(), "entry-mon")
	require.NoError(t, err)
	assert.Equal(t, schedule.EntryActive, entry.Status)

	records, err := f.attendanceRepo.ListByStaffAndDate(context.Background(), "doc-1", "clinic-1", monday)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)
}

func TestRevertApproval_LeavesCheckedInDayAlone(t *testing.T) {
	t.Parallel()
	f := newCascadeFixture()

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	checkIn := monday.Add(8 * time.Hour)
	_, err := f.attendanceRepo.Create(context.Background(), attendance.Attendance{
		ID:       "att-1",
		StaffID:  "doc-1",
		ClinicID: "clinic-1",
		Date:     monday,
		CheckIn:  &checkIn,
		Status:   attendance.StatusOnTime,
	})
	require.NoError(t, err)

	f.engine.RevertApproval(context.Background(), approvedRequest(monday, monday))

	record, err := f.attendanceRepo.GetByID(context.Background(), "att-1", "clinic-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, record.Status)
}
