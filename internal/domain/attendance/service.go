package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn processes a staff check-in with biometric and network verification
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut processes a staff check-out
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// SubmitExplanation opens the explanation thread on an irregular record
	SubmitExplanation(ctx context.Context, req SubmitExplanationRequest) (AttendanceResponse, error)

	// ProcessExplanation approves or rejects a pending explanation (admin)
	ProcessExplanation(ctx context.Context, req ProcessExplanationRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string, clinicID string) (AttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter, clinicID string) (ListAttendanceResponse, error)
}
