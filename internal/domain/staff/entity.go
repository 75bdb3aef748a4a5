package staff

import "time"

type Role string

const (
	RoleDoctor       Role = "DOCTOR"
	RoleNurse        Role = "NURSE"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleAdmin        Role = "ADMIN"
)

type Staff struct {
	ID           string
	ClinicID     string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDoctor reports whether the staff member's expected start time comes from
// the published doctor schedule rather than the clinic default.
func (s Staff) IsDoctor() bool {
	return s.Role == RoleDoctor
}

// IsAdmin reports whether the staff member may process explanations, leave
// requests and weekly schedules.
func (s Staff) IsAdmin() bool {
	return s.Role == RoleAdmin
}
