package attendance

import (
	"time"
)

// Status is the closed set of attendance statuses. Protected statuses are
// the APPROVED_* members; automatic recomputation must never overwrite them.
type Status string

const (
	StatusOnTime          Status = "ON_TIME"
	StatusLate            Status = "LATE"
	StatusAbsent          Status = "ABSENT"
	StatusApprovedLate    Status = "APPROVED_LATE"
	StatusApprovedAbsence Status = "APPROVED_ABSENCE"
	StatusApprovedPresent Status = "APPROVED_PRESENT"
)

var protectedStatuses = map[Status]bool{
	StatusApprovedLate:    true,
	StatusApprovedAbsence: true,
	StatusApprovedPresent: true,
}

// IsProtected reports whether s may only be changed by an explicit admin
// decision or a leave cascade, never by check-in/out recomputation.
func (s Status) IsProtected() bool {
	return protectedStatuses[s]
}

type VerificationStatus string

const (
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationFailed   VerificationStatus = "FAILED"
)

// Shift is a half-day work window. A nil *Shift on a record means the record
// covers the full day (leave-cascade absence records).
type Shift string

const (
	ShiftMorning   Shift = "MORNING"
	ShiftAfternoon Shift = "AFTERNOON"
)

var ShiftValues = []string{
	string(ShiftMorning),
	string(ShiftAfternoon),
}

type ExplanationType string

const (
	ExplanationLate            ExplanationType = "LATE"
	ExplanationAbsent          ExplanationType = "ABSENT"
	ExplanationMissingCheckIn  ExplanationType = "MISSING_CHECK_IN"
	ExplanationMissingCheckOut ExplanationType = "MISSING_CHECK_OUT"
)

var ExplanationTypeValues = []string{
	string(ExplanationLate),
	string(ExplanationAbsent),
	string(ExplanationMissingCheckIn),
	string(ExplanationMissingCheckOut),
}

// ExplanationStatus tracks the single explanation thread a record may carry.
type ExplanationStatus string

const (
	ExplanationNone     ExplanationStatus = "NONE"
	ExplanationPending  ExplanationStatus = "PENDING"
	ExplanationApproved ExplanationStatus = "APPROVED"
	ExplanationRejected ExplanationStatus = "REJECTED"
)

type Attendance struct {
	ID       string
	StaffID  string
	ClinicID string
	Date     time.Time // work date at local midnight, not a timestamp
	Shift    *Shift

	CheckIn  *time.Time
	CheckOut *time.Time

	Status             Status
	VerificationStatus VerificationStatus
	SimilarityScore    *float64

	ExpectedWorkHours *float64
	ActualWorkHours   *float64
	Note              *string

	// Explanation thread, at most one per record.
	ExplanationType   *ExplanationType
	ExplanationStatus ExplanationStatus
	ExplanationReason *string
	ReviewedBy        *string
	ReviewerComment   *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	StaffName *string
}

// NeedsExplanation reports whether staff should be asked to explain this
// record: no explanation thread exists yet and the record is irregular
// (LATE, ABSENT, or exactly one of check-in/check-out present).
func (a Attendance) NeedsExplanation() bool {
	if a.ExplanationStatus != "" && a.ExplanationStatus != ExplanationNone {
		return false
	}
	if a.Status == StatusLate || a.Status == StatusAbsent {
		return true
	}
	return (a.CheckIn == nil) != (a.CheckOut == nil)
}
