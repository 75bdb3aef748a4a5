package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in for this shift")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")

	// Explanation errors
	ErrDuplicateExplanation        = errors.New("an explanation already exists for this record")
	ErrNoExplanationNeeded         = errors.New("this record does not need an explanation")
	ErrNoPendingExplanation        = errors.New("no pending explanation on this record")
	ErrExplanationAlreadyProcessed = errors.New("explanation has already been approved or rejected")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrProtectedStatus    = errors.New("attendance status is protected and cannot be recomputed")
)
