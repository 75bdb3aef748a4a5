package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All methods include clinicID to prevent cross-clinic data access.
type AttendanceRepository interface {
	// Create creates a new attendance record. At most one record may exist
	// per (staff, clinic, date, shift); implementations enforce the key
	// atomically and return pgx.ErrNoRows when a concurrent writer already
	// holds it.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID with clinic isolation
	GetByID(ctx context.Context, id string, clinicID string) (Attendance, error)

	// GetByKey retrieves the record for (staff, clinic, date, shift).
	// A full-day record (nil shift) matches any shift; used to prevent
	// double check-in. Returns nil when no record exists.
	GetByKey(ctx context.Context, staffID string, clinicID string, date time.Time, shift *Shift) (*Attendance, error)

	// ListByStaffAndDate retrieves all records for a staff member on a date
	ListByStaffAndDate(ctx context.Context, staffID string, clinicID string, date time.Time) ([]Attendance, error)

	// ListByClinicAndDate retrieves all records for a clinic on a date
	ListByClinicAndDate(ctx context.Context, clinicID string, date time.Time) ([]Attendance, error)

	// ListByStaffAndRange retrieves records for a staff member in [from, to]
	ListByStaffAndRange(ctx context.Context, staffID string, clinicID string, from, to time.Time) ([]Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, att Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter, clinicID string) ([]Attendance, int64, error)
}
