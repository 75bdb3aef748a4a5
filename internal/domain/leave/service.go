package leave

import "context"

// LeaveService defines business logic for leave requests. Approval and
// cancel-of-approved run the attendance/schedule cascade.
type LeaveService interface {
	// CreateLeaveRequest submits a new PENDING request
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// ProcessLeaveRequest approves or rejects a pending request (admin).
	// Approval walks the date range and suppresses schedule entries /
	// upserts APPROVED_ABSENCE attendance records.
	ProcessLeaveRequest(ctx context.Context, req ProcessLeaveRequestRequest) (LeaveRequestResponse, error)

	// CancelLeaveRequest cancels the requester's own request. Cancelling an
	// APPROVED request reverts the cascade first.
	CancelLeaveRequest(ctx context.Context, requestID string, staffID string) (LeaveRequestResponse, error)

	// GetLeaveRequest retrieves one request
	GetLeaveRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	// ListLeaveRequests retrieves a clinic's requests (admin)
	ListLeaveRequests(ctx context.Context, clinicID string, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)

	// ListMyLeaveRequests retrieves the authenticated staff member's requests
	ListMyLeaveRequests(ctx context.Context, staffID string, clinicID string, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
}
