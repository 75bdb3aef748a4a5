package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveStatusPending   LeaveRequestStatus = "PENDING"
	LeaveStatusApproved  LeaveRequestStatus = "APPROVED"
	LeaveStatusRejected  LeaveRequestStatus = "REJECTED"
	LeaveStatusCancelled LeaveRequestStatus = "CANCELLED"
)

// ShiftScope narrows a leave request to half days. FULL_DAY (or absent)
// covers the whole day.
type ShiftScope string

const (
	ScopeMorning   ShiftScope = "MORNING"
	ScopeAfternoon ShiftScope = "AFTERNOON"
	ScopeFullDay   ShiftScope = "FULL_DAY"
)

var ShiftScopeValues = []string{
	string(ScopeMorning),
	string(ScopeAfternoon),
	string(ScopeFullDay),
}

// LeaveRequest entity. Once APPROVED or REJECTED the request is immutable
// except for an administrative comment appended to Reason.
type LeaveRequest struct {
	ID       string
	StaffID  string
	ClinicID string

	StartDate time.Time // inclusive
	EndDate   time.Time // inclusive

	LeaveType  string
	ShiftScope *ShiftScope

	Reason string
	Status LeaveRequestStatus

	ApprovedBy *string
	ApprovedAt *time.Time

	CancelledAt *time.Time

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	StaffName *string
}
