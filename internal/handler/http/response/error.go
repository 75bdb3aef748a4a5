package response

import (
	"errors"
	"net/http"

	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/auth"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/leave"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/staff"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/verification"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A rejected weekly schedule carries its violation list
	var rejection *schedule.RejectionError
	if errors.As(err, &rejection) {
		UnprocessableWithViolations(w, "Weekly schedule rejected", rejection.Violations)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrStaffInactive):
		Forbidden(w, "Staff member is inactive")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Verification gate errors
	case errors.Is(err, verification.ErrEmbeddingNotRegistered):
		Forbidden(w, "No biometric reference registered")
	case errors.Is(err, verification.ErrEmbeddingDimensionMismatch):
		BadRequest(w, "Biometric sample has the wrong dimension", nil)
	case errors.Is(err, verification.ErrBiometricRejected):
		Forbidden(w, "Biometric verification failed")
	case errors.Is(err, verification.ErrNetworkRejected):
		Forbidden(w, "Device is not on a clinic network")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this shift")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open check-in found")
	case errors.Is(err, attendance.ErrDuplicateExplanation):
		Conflict(w, "An explanation already exists for this record")
	case errors.Is(err, attendance.ErrNoExplanationNeeded):
		BadRequest(w, "This record does not need an explanation", nil)
	case errors.Is(err, attendance.ErrNoPendingExplanation):
		BadRequest(w, "No pending explanation on this record", nil)
	case errors.Is(err, attendance.ErrExplanationAlreadyProcessed):
		Conflict(w, "Explanation has already been processed")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "Schedule entry not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrCannotCancel):
		Conflict(w, "Leave request can no longer be cancelled")
	case errors.Is(err, leave.ErrUnauthorizedAccess):
		Forbidden(w, "Not allowed to access this leave request")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
