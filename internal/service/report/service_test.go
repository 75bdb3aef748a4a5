package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/repository/inmemory"
)

func seedRecord(t *testing.T, repo *inmemory.AttendanceRepository, id, staffID string, date time.Time, status attendance.Status, opts ...func(*attendance.Attendance)) {
	t.Helper()
	att := attendance.Attendance{
		ID:                 id,
		StaffID:            staffID,
		ClinicID:           "clinic-1",
		Date:               date,
		Status:             status,
		VerificationStatus: attendance.VerificationVerified,
		ExplanationStatus:  attendance.ExplanationNone,
	}
	for _, opt := range opts {
		opt(&att)
	}
	_, err := repo.Create(context.Background(), att)
	require.NoError(t, err)
}

func TestDailySummary_CountsByStatus(t *testing.T) {
	t.Parallel()
	repo := inmemory.NewAttendanceRepository()
	svc := NewReportService(repo, time.UTC)

	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	seedRecord(t, repo, "a1", "staff-1", day, attendance.StatusOnTime)
	seedRecord(t, repo, "a2", "staff-2", day, attendance.StatusLate, func(a *attendance.Attendance) {
		a.ExplanationStatus = attendance.ExplanationPending
	})
	seedRecord(t, repo, "a3", "staff-3", day, attendance.StatusAbsent, func(a *attendance.Attendance) {
		a.VerificationStatus = attendance.VerificationFailed
	})
	seedRecord(t, repo, "a4", "staff-4", day, attendance.StatusApprovedAbsence)
	// Different day, excluded.
	seedRecord(t, repo, "a5", "staff-1", day.AddDate(0, 0, 1), attendance.StatusOnTime)

	summary, err := svc.DailySummary(context.Background(), "clinic-1", "2024-03-04")

	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.OnTime)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.ApprovedAbsence)
	assert.Equal(t, 3, summary.Verified)
	assert.Equal(t, 1, summary.VerificationFailures)
	assert.Equal(t, 1, summary.PendingExplanations)
}

func TestDailySummary_BadDate(t *testing.T) {
	t.Parallel()
	svc := NewReportService(inmemory.NewAttendanceRepository(), time.UTC)

	_, err := svc.DailySummary(context.Background(), "clinic-1", "04-03-2024")
	require.Error(t, err)
}

func TestMonthlySummary_BucketsAndHours(t *testing.T) {
	t.Parallel()
	repo := inmemory.NewAttendanceRepository()
	svc := NewReportService(repo, time.UTC)

	hours := func(expected, actual float64) func(*attendance.Attendance) {
		return func(a *attendance.Attendance) {
			a.ExpectedWorkHours = &expected
			a.ActualWorkHours = &actual
		}
	}

	seedRecord(t, repo, "m1", "staff-1", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), attendance.StatusOnTime, hours(8, 8.5))
	seedRecord(t, repo, "m2", "staff-1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), attendance.StatusLate, hours(8, 7))
	seedRecord(t, repo, "m3", "staff-1", time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), attendance.StatusApprovedAbsence)
	seedRecord(t, repo, "m4", "staff-1", time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), attendance.StatusApprovedPresent, hours(8, 8))
	// Outside the month, excluded.
	seedRecord(t, repo, "m5", "staff-1", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), attendance.StatusOnTime)
	// Different staff member, excluded.
	seedRecord(t, repo, "m6", "staff-2", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), attendance.StatusOnTime)

	summary, err := svc.MonthlySummary(context.Background(), "staff-1", "clinic-1", 2024, 3)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.DaysOnTime)
	assert.Equal(t, 1, summary.DaysLate)
	assert.Equal(t, 1, summary.DaysApprovedAbsence)
	assert.Equal(t, 1, summary.DaysApprovedPresent)
	assert.InDelta(t, 24.0, summary.TotalExpectedHours, 1e-9)
	assert.InDelta(t, 23.5, summary.TotalActualHours, 1e-9)
	assert.InDelta(t, 0.75, summary.AttendanceRate, 1e-9)
}

func TestMonthlySummary_InvalidMonth(t *testing.T) {
	t.Parallel()
	svc := NewReportService(inmemory.NewAttendanceRepository(), time.UTC)

	_, err := svc.MonthlySummary(context.Background(), "staff-1", "clinic-1", 2024, 13)
	require.Error(t, err)
}
