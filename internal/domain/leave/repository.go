package leave

import (
	"context"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	// Create persists a new request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// Update updates status/approver/cancellation fields
	Update(ctx context.Context, request LeaveRequest) error

	// ListByClinic retrieves a clinic's requests with pagination
	ListByClinic(ctx context.Context, clinicID string, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	// ListByStaff retrieves a staff member's own requests
	ListByStaff(ctx context.Context, staffID string, clinicID string, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
}
