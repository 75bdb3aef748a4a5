package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	"github.com/sunshine-dental/clinic-backend-go/internal/repository/inmemory"
)

type fixture struct {
	svc  schedule.ScheduleService
	repo *inmemory.ScheduleEntryRepository
}

func newFixture(cfg Config) fixture {
	repo := inmemory.NewScheduleEntryRepository()
	return fixture{
		svc:  NewScheduleService(cfg, repo, inmemory.NewTransactor(), time.UTC),
		repo: repo,
	}
}

func defaultConfig() Config {
	return Config{DutyMode: schedule.DutySingleClinic, MinClinicCoverage: 1}
}

// validWeek proposes two balanced doctors at one clinic for every working
// day of the week starting Monday 2024-03-04.
func validWeek() schedule.WeeklyScheduleRequest {
	days := make(map[string][]schedule.ProposedAssignment)
	for _, day := range schedule.WeekdayKeys {
		days[day] = []schedule.ProposedAssignment{
			{DoctorID: "doc-1", ClinicID: "clinic-1", RoomID: "room-1", StartTime: "08:00", EndTime: "12:00"},
			{DoctorID: "doc-2", ClinicID: "clinic-1", RoomID: "room-2", StartTime: "13:00", EndTime: "17:00"},
		}
	}
	return schedule.WeeklyScheduleRequest{WeekStart: "2024-03-04", Days: days}
}

func TestValidateSchedule_CleanProposalIsValid(t *testing.T) {
	t.Parallel()
	f := newFixture(defaultConfig())

	result, err := f.svc.ValidateSchedule(context.Background(), validWeek())

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateSchedule_MissingDay(t *testing.T) {
	t.Parallel()
	f := newFixture(defaultConfig())

	req := validWeek()
	delete(req.Days, "SATURDAY")

	result, err := f.svc.ValidateSchedule(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "SATURDAY")
}

func TestValidateSchedule_WeekStartMustBeMonday(t *testing.T) {
	t.Parallel()
	f := newFixture(defaultConfig())

	req := validWeek()
	req.WeekStart = "2024-03-05"

	_, err := f.svc.ValidateSchedule(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Monday")
}

func TestValidateSchedule_DoubleBookedDoctor(t *testing.T) {
	t.Parallel()
	f := newFixture(defaultConfig())

	req := validWeek()
	req.Days["MONDAY"] = []schedule.ProposedAssignment{
		{DoctorID: "doc-1", ClinicID: "clinic-1", RoomID: "room-1", StartTime: "08:00", EndTime: "12:00"},
		{DoctorID: "doc-1", ClinicID: "clinic-1", RoomID: "room-2", StartTime: "10:00", EndTime: "14:00"},
	}

	result, err := f.svc.ValidateSchedule(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "doc-1")
	assert.Contains(t, result.Errors[0], "MONDAY")
}

func TestValidateSchedule_SingleClinicRule(t *testing.T) {
	t.Parallel()
	f := newFixture(defaultConfig())

	req := validWeek()
	req.Days["TUESDAY"] = []schedule.ProposedAssignment{
		{DoctorID: "doc-1", ClinicID: "clinic-1", RoomID: "room-1", StartTime: "08:00", EndTime: "12:00"},
		{DoctorID: "doc-2", ClinicID: "clinic-2", RoomID: "room-1", StartTime: "13:00", EndTime: "17:00"},
	}

	result, err := f.svc.ValidateSchedule(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "TUESDAY")
	assert.Contains(t, result.Errors[0], "single-clinic")
}

func TestValidateSchedule_FullWeekDutyClinicPair(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()
	cfg.DutyMode = schedule.DutyFullWeek
	f := newFixture(cfg)

	req := validWeek()
	// Same doctor, same day, same clinic twice: rejected under FULL_WEEK.
	req.Days["WEDNESDAY"] = []schedule.ProposedAssignment{
		{DoctorID: "doc-1", ClinicID: "clinic-1", RoomID: "room-1", StartTime: "08:00", EndTime: "12:00"},
		{DoctorID: "doc-1", ClinicID: "clinic-1", RoomID: "room-2", StartTime: "13:00", EndTime: "17:00"},
	}

	result, err := f.svc.ValidateSchedule(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "different clinics")

	// Different clinics for the pair passes.
	req.Days["WEDNESDAY"][1].ClinicID = "clinic-2"
	result, err = f.svc.ValidateSchedule(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateSchedule_StartMustPrecedeEnd(t *testing.T) {
	t.Parallel()
	f := newFixture(defaultConfig())

	req := validWeek()
	req.Days["THURSDAY"][0].StartTime = "14:00"
	req.Days["THURSDAY"][0].EndTime = "09:00"

	result, err := f.svc.ValidateSchedule(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "before end_time")
}

func TestValidateSchedule_RequiredDoctorHeadcount(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()
	cfg.RequiredDoctorsPerDay = 3
	f := newFixture(cfg)

	result, err := f.svc.ValidateSchedule(context.Background(), validWeek())

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, len(schedule.WeekdayKeys))
	assert.Contains(t, result.Errors[0], "exactly 3 distinct doctors")
}

func TestValidateSchedule_ConflictWithPersistedEntry(t *testing.T) {
	t.Parallel()
	f := newFixture(defaultConfig())

	_, err := f.repo.Create(context.Background(), schedule.ScheduleEntry{
		ID:        "existing-1",
		DoctorID:  "doc-1",
		ClinicID:  "clinic-9",
		RoomID:    "room-1",
		Date:      time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC),
		Status:    schedule.EntryActive,
	})
	require.NoError(t, err)

	result, err := f.svc.ValidateSchedule(context.Background(), validWeek())

	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "already scheduled")
	assert.Contains(t, result.Errors[0], "clinic-9")
}

func TestValidateSchedule_InactiveEntriesDoNotConflict(t *testing.T) {
	t.Parallel()
	f := newFixture(defaultConfig())

	_, err := f.repo.Create(context.Background(), schedule.ScheduleEntry{
		ID:        "existing-1",
		DoctorID:  "doc-1",
		ClinicID:  "clinic-9",
		RoomID:    "room-1",
		Date:      time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC),
		Status:    schedule.EntryInactive,
	})
	require.NoError(t, err)

	result, err := f.svc.ValidateSchedule(context.Background(), validWeek())

	require.NoError(t, err)
	assert.True(t, result.Valid)
}
