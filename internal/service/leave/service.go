package leave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/leave"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/clock"
)

// LeaveServiceImpl implements leave.LeaveService
type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRequestRepository
	cascade   *CascadeEngine
	clock     clock.Clock
	location  *time.Location
}

// NewLeaveService creates a new leave service instance
func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	cascade *CascadeEngine,
	clk clock.Clock,
	location *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		cascade:   cascade,
		clock:     clk,
		location:  location,
	}
}

func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.ParseInLocation("2006-01-02", req.StartDate, s.location)
	endDate, _ := time.ParseInLocation("2006-01-02", req.EndDate, s.location)

	request := leave.LeaveRequest{
		ID:          uuid.New().String(),
		StaffID:     req.StaffID,
		ClinicID:    req.ClinicID,
		StartDate:   startDate,
		EndDate:     endDate,
		LeaveType:   req.LeaveType,
		ShiftScope:  req.ShiftScope,
		Reason:      req.Reason,
		Status:      leave.LeaveStatusPending,
		SubmittedAt: s.clock.Now().In(s.location),
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

func (s *LeaveServiceImpl) ProcessLeaveRequest(ctx context.Context, req leave.ProcessLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.leaveRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	now := s.clock.Now().In(s.location)
	request.ApprovedBy = &req.ApproverID
	request.ApprovedAt = &now
	if req.Comment != nil {
		request.Reason = fmt.Sprintf("%s\n[reviewer] %s", request.Reason, *req.Comment)
	}

	if req.Action == leave.LeaveActionReject {
		request.Status = leave.LeaveStatusRejected
		if err := s.leaveRepo.Update(ctx, request); err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
		}
		return toResponse(request), nil
	}

	request.Status = leave.LeaveStatusApproved
	if err := s.leaveRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	// The cascade is at-least-once: day-level failures are logged inside
	// and the whole walk can be re-run safely.
	s.cascade.ApplyApproval(ctx, request)

	return toResponse(request), nil
}

func (s *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, requestID string, staffID string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.StaffID != staffID {
		return leave.LeaveRequestResponse{}, leave.ErrUnauthorizedAccess
	}

	switch request.Status {
	case leave.LeaveStatusPending:
	case leave.LeaveStatusApproved:
		s.cascade.RevertApproval(ctx, request)
	default:
		return leave.LeaveRequestResponse{}, leave.ErrCannotCancel
	}

	now := s.clock.Now().In(s.location)
	request.Status = leave.LeaveStatusCancelled
	request.CancelledAt = &now

	if err := s.leaveRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return toResponse(request), nil
}

func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return toResponse(request), nil
}

func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, clinicID string, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, total, err := s.leaveRepo.ListByClinic(ctx, clinicID, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toListResponse(requests, total, filter), nil
}

func (s *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, staffID string, clinicID string, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, total, err := s.leaveRepo.ListByStaff(ctx, staffID, clinicID, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toListResponse(requests, total, filter), nil
}

func toListResponse(requests []leave.LeaveRequest, total int64, filter leave.LeaveRequestFilter) leave.ListLeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showingFrom := (filter.Page-1)*filter.Limit + 1
	showingTo := showingFrom + len(responses) - 1
	if len(responses) == 0 {
		showingFrom = 0
		showingTo = 0
	}

	return leave.ListLeaveRequestResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    fmt.Sprintf("%d-%d of %d", showingFrom, showingTo, total),
		Requests:   responses,
	}
}

func toResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:          request.ID,
		StaffID:     request.StaffID,
		StaffName:   request.StaffName,
		ClinicID:    request.ClinicID,
		StartDate:   request.StartDate.Format("2006-01-02"),
		EndDate:     request.EndDate.Format("2006-01-02"),
		LeaveType:   request.LeaveType,
		Reason:      request.Reason,
		Status:      string(request.Status),
		ApprovedBy:  request.ApprovedBy,
		SubmittedAt: request.SubmittedAt.Format(time.RFC3339),
	}
	if request.ShiftScope != nil {
		scope := string(*request.ShiftScope)
		resp.ShiftScope = &scope
	}
	return resp
}
