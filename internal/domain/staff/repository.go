package staff

import "context"

// StaffRepository defines data access for staff members.
type StaffRepository interface {
	// GetByID retrieves a staff member with clinic isolation
	GetByID(ctx context.Context, id string, clinicID string) (Staff, error)

	// GetByEmail retrieves a staff member for login
	GetByEmail(ctx context.Context, email string) (Staff, error)

	// ListActiveByClinic retrieves a clinic's active staff
	ListActiveByClinic(ctx context.Context, clinicID string) ([]Staff, error)

	// ListClinicIDs retrieves every clinic id with active staff, for the
	// day-close job
	ListClinicIDs(ctx context.Context) ([]string, error)
}
