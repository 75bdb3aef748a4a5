package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/database"
)

// Config carries the schedule rules resolved from the environment.
type Config struct {
	DutyMode schedule.DutyMode
	// RequiredDoctorsPerDay enforces a fixed distinct-doctor headcount
	// per day; 0 disables the rule.
	RequiredDoctorsPerDay int
	MinClinicCoverage     int
}

// ScheduleServiceImpl implements schedule.ScheduleService
type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleEntryRepository
	tx           database.Transactor
	location     *time.Location
	cfg          Config
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(
	cfg Config,
	scheduleRepo schedule.ScheduleEntryRepository,
	tx database.Transactor,
	location *time.Location,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		tx:           tx,
		location:     location,
		cfg:          cfg,
	}
}

func (s *ScheduleServiceImpl) ValidateSchedule(ctx context.Context, req schedule.WeeklyScheduleRequest) (schedule.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.ValidationResult{}, err
	}

	weekStart, err := time.ParseInLocation("2006-01-02", req.WeekStart, s.location)
	if err != nil {
		return schedule.ValidationResult{}, fmt.Errorf("failed to parse week_start: %w", err)
	}

	violations, slots := s.checkConstraints(ctx, weekStart, req)
	warnings := s.checkHeuristics(slots, req.Rotation)

	return schedule.ValidationResult{
		Valid:    len(violations) == 0,
		Errors:   violations,
		Warnings: warnings,
	}, nil
}

func (s *ScheduleServiceImpl) CreateWeeklySchedule(ctx context.Context, req schedule.WeeklyScheduleRequest) (schedule.WeeklyScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeeklyScheduleResponse{}, err
	}

	weekStart, err := time.ParseInLocation("2006-01-02", req.WeekStart, s.location)
	if err != nil {
		return schedule.WeeklyScheduleResponse{}, fmt.Errorf("failed to parse week_start: %w", err)
	}

	violations, slots := s.checkConstraints(ctx, weekStart, req)
	if len(violations) > 0 {
		return schedule.WeeklyScheduleResponse{}, &schedule.RejectionError{Violations: violations}
	}
	warnings := s.checkHeuristics(slots, req.Rotation)

	var created []schedule.ScheduleEntry
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, slot := range slots {
			entry, err := s.scheduleRepo.Create(txCtx, schedule.ScheduleEntry{
				ID:        uuid.New().String(),
				DoctorID:  slot.DoctorID,
				ClinicID:  slot.ClinicID,
				RoomID:    slot.RoomID,
				Date:      slot.Date,
				StartTime: slot.Start,
				EndTime:   slot.End,
				Status:    schedule.EntryActive,
			})
			if err != nil {
				return fmt.Errorf("failed to create schedule entry: %w", err)
			}
			created = append(created, entry)
		}
		return nil
	})
	if err != nil {
		return schedule.WeeklyScheduleResponse{}, err
	}

	responses := make([]schedule.ScheduleEntryResponse, 0, len(created))
	for _, entry := range created {
		responses = append(responses, toEntryResponse(entry))
	}

	return schedule.WeeklyScheduleResponse{
		WeekStart: req.WeekStart,
		Entries:   responses,
		Warnings:  warnings,
	}, nil
}

func (s *ScheduleServiceImpl) ListWeek(ctx context.Context, clinicID string, weekStart time.Time) ([]schedule.ScheduleEntryResponse, error) {
	entries, err := s.scheduleRepo.ListByClinicAndRange(ctx, clinicID, weekStart, weekStart.AddDate(0, 0, 5))
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}

	responses := make([]schedule.ScheduleEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}
	return responses, nil
}

func toEntryResponse(entry schedule.ScheduleEntry) schedule.ScheduleEntryResponse {
	return schedule.ScheduleEntryResponse{
		ID:         entry.ID,
		DoctorID:   entry.DoctorID,
		DoctorName: entry.DoctorName,
		ClinicID:   entry.ClinicID,
		RoomID:     entry.RoomID,
		Date:       entry.Date.Format("2006-01-02"),
		StartTime:  entry.StartTime.Format("15:04"),
		EndTime:    entry.EndTime.Format("15:04"),
		Status:     string(entry.Status),
	}
}
