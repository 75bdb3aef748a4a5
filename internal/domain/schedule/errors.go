package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEntryNotFound    = errors.New("schedule entry not found")
	ErrScheduleRejected = errors.New("weekly schedule rejected")
)

// RejectionError carries the full hard-constraint violation list so the
// caller can explain exactly which rules failed. It wraps
// ErrScheduleRejected for errors.Is checks.
type RejectionError struct {
	Violations []string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("weekly schedule rejected: %s", strings.Join(e.Violations, "; "))
}

func (e *RejectionError) Unwrap() error {
	return ErrScheduleRejected
}
