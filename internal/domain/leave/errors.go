package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrCannotCancel                 = errors.New("leave request can no longer be cancelled")
	ErrUnauthorizedAccess           = errors.New("unauthorized to access this leave request")
)
