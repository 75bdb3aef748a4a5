package report

import (
	"context"
	"fmt"
	"time"

	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/report"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/validator"
)

// ReportServiceImpl implements report.ReportService
type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	location       *time.Location
}

// NewReportService creates a new report service instance
func NewReportService(attendanceRepo attendance.AttendanceRepository, location *time.Location) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		location:       location,
	}
}

func (s *ReportServiceImpl) DailySummary(ctx context.Context, clinicID string, date string) (report.DailySummaryResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return report.DailySummaryResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.location)

	records, err := s.attendanceRepo.ListByClinicAndDate(ctx, clinicID, day)
	if err != nil {
		return report.DailySummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary := report.DailySummaryResponse{
		ClinicID: clinicID,
		Date:     date,
		Total:    len(records),
	}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusOnTime:
			summary.OnTime++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusApprovedLate:
			summary.ApprovedLate++
		case attendance.StatusApprovedAbsence:
			summary.ApprovedAbsence++
		case attendance.StatusApprovedPresent:
			summary.ApprovedPresent++
		}

		switch rec.VerificationStatus {
		case attendance.VerificationVerified:
			summary.Verified++
		case attendance.VerificationFailed:
			summary.VerificationFailures++
		}

		if rec.ExplanationStatus == attendance.ExplanationPending {
			summary.PendingExplanations++
		}
	}
	return summary, nil
}

func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, staffID string, clinicID string, year int, month int) (report.MonthlySummaryResponse, error) {
	if month < 1 || month > 12 {
		return report.MonthlySummaryResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be between 1 and 12",
		}}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.location)
	to := from.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByStaffAndRange(ctx, staffID, clinicID, from, to)
	if err != nil {
		return report.MonthlySummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary := report.MonthlySummaryResponse{
		StaffID:  staffID,
		ClinicID: clinicID,
		Year:     year,
		Month:    month,
	}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusOnTime:
			summary.DaysOnTime++
		case attendance.StatusLate:
			summary.DaysLate++
		case attendance.StatusAbsent:
			summary.DaysAbsent++
		case attendance.StatusApprovedLate:
			summary.DaysApprovedLate++
		case attendance.StatusApprovedAbsence:
			summary.DaysApprovedAbsence++
		case attendance.StatusApprovedPresent:
			summary.DaysApprovedPresent++
		}
		if rec.ExpectedWorkHours != nil {
			summary.TotalExpectedHours += *rec.ExpectedWorkHours
		}
		if rec.ActualWorkHours != nil {
			summary.TotalActualHours += *rec.ActualWorkHours
		}
	}

	if len(records) > 0 {
		present := summary.DaysOnTime + summary.DaysLate + summary.DaysApprovedLate + summary.DaysApprovedPresent
		summary.AttendanceRate = float64(present) / float64(len(records))
	}
	return summary, nil
}
