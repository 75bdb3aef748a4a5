package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/verification"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/clock"
)

// Config carries the attendance tunables resolved from the environment.
type Config struct {
	// DefaultStartTime ("15:04") applies when no schedule entry matches.
	DefaultStartTime string
	DefaultWorkHours float64
}

// AttendanceServiceImpl implements attendance.AttendanceService
type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleEntryRepository
	gate           verification.Service
	clock          clock.Clock
	location       *time.Location
	cfg            Config
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(
	cfg Config,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleEntryRepository,
	gate verification.Service,
	clk clock.Clock,
	location *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		gate:           gate,
		clock:          clk,
		location:       location,
		cfg:            cfg,
	}
}

func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now().In(s.location)
	date := midnight(now)

	shift := deriveShift(now)
	if req.Shift != nil {
		shift = *req.Shift
	}

	existing, err := s.attendanceRepo.GetByKey(ctx, req.StaffID, req.ClinicID, date, &shift)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up attendance: %w", err)
	}
	if existing != nil && existing.CheckIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	result, err := s.gate.Verify(ctx, req.StaffID, req.ClinicID, req.Sample, req.SSID, req.BSSID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	expectedStart, expectedHours := s.expectedStart(ctx, req.StaffID, req.ClinicID, date, shift)
	if expectedHours == nil {
		expectedHours = &s.cfg.DefaultWorkHours
	}

	checkIn := now
	similarity := result.Biometric.Similarity

	if existing != nil {
		existing.CheckIn = &checkIn
		existing.VerificationStatus = attendance.VerificationVerified
		existing.SimilarityScore = &similarity
		existing.ExpectedWorkHours = expectedHours
		if !existing.Status.IsProtected() {
			existing.Status = CalculateStatus(checkIn, expectedStart)
		}
		if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
		return toResponse(*existing), nil
	}

	att := attendance.Attendance{
		ID:                 uuid.New().String(),
		StaffID:            req.StaffID,
		ClinicID:           req.ClinicID,
		Date:               date,
		Shift:              &shift,
		CheckIn:            &checkIn,
		Status:             CalculateStatus(checkIn, expectedStart),
		VerificationStatus: attendance.VerificationVerified,
		SimilarityScore:    &similarity,
		ExpectedWorkHours:  expectedHours,
		ExplanationStatus:  attendance.ExplanationNone,
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		// A concurrent check-in for the same key won the insert.
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return toResponse(created), nil
}

func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now().In(s.location)
	date := midnight(now)

	records, err := s.attendanceRepo.ListByStaffAndDate(ctx, req.StaffID, req.ClinicID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up attendance: %w", err)
	}

	var open *attendance.Attendance
	closedSession := false
	for i := range records {
		if records[i].CheckIn != nil && records[i].CheckOut == nil {
			open = &records[i]
			break
		}
		if records[i].CheckOut != nil {
			closedSession = true
		}
	}
	if open == nil {
		if closedSession {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	if _, err := s.gate.Verify(ctx, req.StaffID, req.ClinicID, req.Sample, req.SSID, req.BSSID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	checkOut := now
	open.CheckOut = &checkOut
	if open.CheckIn != nil {
		hours := checkOut.Sub(*open.CheckIn).Hours()
		open.ActualWorkHours = &hours
	} else if !open.Status.IsProtected() {
		// A check-out with no recorded check-in cannot be presence.
		open.Status = attendance.StatusAbsent
	}

	if err := s.attendanceRepo.Update(ctx, *open); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return toResponse(*open), nil
}

func (s *AttendanceServiceImpl) SubmitExplanation(ctx context.Context, req attendance.SubmitExplanationRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.AttendanceID, req.ClinicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	// Staff may only explain their own records.
	if att.StaffID != req.StaffID {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	if att.ExplanationStatus != "" && att.ExplanationStatus != attendance.ExplanationNone {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateExplanation
	}
	if !att.NeedsExplanation() {
		return attendance.AttendanceResponse{}, attendance.ErrNoExplanationNeeded
	}

	att.ExplanationType = &req.Type
	att.ExplanationStatus = attendance.ExplanationPending
	att.ExplanationReason = &req.Reason

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return toResponse(att), nil
}

func (s *AttendanceServiceImpl) ProcessExplanation(ctx context.Context, req attendance.ProcessExplanationRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.AttendanceID, req.ClinicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	switch att.ExplanationStatus {
	case attendance.ExplanationPending:
	case attendance.ExplanationApproved, attendance.ExplanationRejected:
		return attendance.AttendanceResponse{}, attendance.ErrExplanationAlreadyProcessed
	default:
		return attendance.AttendanceResponse{}, attendance.ErrNoPendingExplanation
	}

	att.ReviewedBy = &req.ReviewerID
	att.ReviewerComment = req.Comment

	if req.Action == attendance.ExplanationActionReject {
		att.ExplanationStatus = attendance.ExplanationRejected
	} else {
		att.ExplanationStatus = attendance.ExplanationApproved
		att.Status = approvedStatus(*att.ExplanationType, att.Status)
	}

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return toResponse(att), nil
}

// approvedStatus maps an approved explanation onto the record's final status.
func approvedStatus(t attendance.ExplanationType, current attendance.Status) attendance.Status {
	switch t {
	case attendance.ExplanationLate:
		return attendance.StatusApprovedLate
	case attendance.ExplanationAbsent:
		return attendance.StatusApprovedAbsence
	case attendance.ExplanationMissingCheckIn:
		return attendance.StatusApprovedPresent
	case attendance.ExplanationMissingCheckOut:
		if current == attendance.StatusLate {
			return attendance.StatusApprovedLate
		}
		return attendance.StatusApprovedPresent
	}
	return current
}

func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string, clinicID string) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id, clinicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return toResponse(att), nil
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter, clinicID string) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter, clinicID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showingFrom := (filter.Page-1)*filter.Limit + 1
	showingTo := showingFrom + len(responses) - 1
	if len(responses) == 0 {
		showingFrom = 0
		showingTo = 0
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     fmt.Sprintf("%d-%d of %d", showingFrom, showingTo, total),
		Attendances: responses,
	}, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                 att.ID,
		StaffID:            att.StaffID,
		StaffName:          att.StaffName,
		ClinicID:           att.ClinicID,
		Date:               att.Date.Format("2006-01-02"),
		Status:             string(att.Status),
		VerificationStatus: string(att.VerificationStatus),
		SimilarityScore:    att.SimilarityScore,
		ExpectedWorkHours:  att.ExpectedWorkHours,
		ActualWorkHours:    att.ActualWorkHours,
		Note:               att.Note,
		ExplanationStatus:  string(att.ExplanationStatus),
		ExplanationReason:  att.ExplanationReason,
		ReviewerComment:    att.ReviewerComment,
		NeedsExplanation:   att.NeedsExplanation(),
	}
	if resp.ExplanationStatus == "" {
		resp.ExplanationStatus = string(attendance.ExplanationNone)
	}
	if att.Shift != nil {
		shift := string(*att.Shift)
		resp.Shift = &shift
	}
	if att.CheckIn != nil {
		v := att.CheckIn.Format(time.RFC3339)
		resp.CheckInTime = &v
	}
	if att.CheckOut != nil {
		v := att.CheckOut.Format(time.RFC3339)
		resp.CheckOutTime = &v
	}
	if att.ExplanationType != nil {
		v := string(*att.ExplanationType)
		resp.ExplanationType = &v
	}
	return resp
}
