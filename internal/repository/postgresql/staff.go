package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/staff"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `
	s.id, s.clinic_id, s.full_name, s.email, s.password_hash,
	s.role, s.is_active, s.created_at, s.updated_at`

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var member staff.Staff
	err := row.Scan(
		&member.ID, &member.ClinicID, &member.FullName, &member.Email, &member.PasswordHash,
		&member.Role, &member.IsActive, &member.CreatedAt, &member.UpdatedAt,
	)
	return member, err
}

// GetByID implements staff.StaffRepository.
func (s *staffRepository) GetByID(ctx context.Context, id string, clinicID string) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + staffColumns + ` FROM staff s WHERE s.id = $1 AND s.clinic_id = $2`

	member, err := scanStaff(q.QueryRow(ctx, query, id, clinicID))
	if err != nil {
		return staff.Staff{}, err
	}
	return member, nil
}

// GetByEmail implements staff.StaffRepository.
func (s *staffRepository) GetByEmail(ctx context.Context, email string) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + staffColumns + ` FROM staff s WHERE LOWER(s.email) = LOWER($1)`

	member, err := scanStaff(q.QueryRow(ctx, query, email))
	if err != nil {
		return staff.Staff{}, err
	}
	return member, nil
}

// ListActiveByClinic implements staff.StaffRepository.
func (s *staffRepository) ListActiveByClinic(ctx context.Context, clinicID string) ([]staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		WHERE s.clinic_id = $1 AND s.is_active = TRUE
		ORDER BY s.full_name, s.id
	`

	rows, err := q.Query(ctx, query, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}
	defer rows.Close()

	var out []staff.Staff
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		out = append(out, member)
	}
	return out, rows.Err()
}

// ListClinicIDs implements staff.StaffRepository.
func (s *staffRepository) ListClinicIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT DISTINCT clinic_id FROM staff WHERE is_active = TRUE ORDER BY clinic_id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinic ids: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan clinic id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
