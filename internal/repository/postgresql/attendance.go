package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.staff_id, a.clinic_id, a.date, a.shift,
	a.check_in, a.check_out,
	a.status, a.verification_status, a.similarity_score,
	a.expected_work_hours, a.actual_work_hours, a.note,
	a.explanation_type, a.explanation_status, a.explanation_reason,
	a.reviewed_by, a.reviewer_comment,
	a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.StaffID, &att.ClinicID, &att.Date, &att.Shift,
		&att.CheckIn, &att.CheckOut,
		&att.Status, &att.VerificationStatus, &att.SimilarityScore,
		&att.ExpectedWorkHours, &att.ActualWorkHours, &att.Note,
		&att.ExplanationType, &att.ExplanationStatus, &att.ExplanationReason,
		&att.ReviewedBy, &att.ReviewerComment,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	// The unique key over (staff_id, clinic_id, date, shift) is declared
	// NULLS NOT DISTINCT so full-day records conflict too. A swallowed
	// insert returns zero rows and surfaces as pgx.ErrNoRows; callers map
	// it to their duplicate error.
	query := `
		INSERT INTO attendances (
			id, staff_id, clinic_id, date, shift,
			check_in, check_out,
			status, verification_status, similarity_score,
			expected_work_hours, actual_work_hours, note,
			explanation_type, explanation_status, explanation_reason,
			reviewed_by, reviewer_comment
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
		ON CONFLICT (staff_id, clinic_id, date, shift) DO NOTHING
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.StaffID, att.ClinicID, att.Date, att.Shift,
		att.CheckIn, att.CheckOut,
		att.Status, att.VerificationStatus, att.SimilarityScore,
		att.ExpectedWorkHours, att.ActualWorkHours, att.Note,
		att.ExplanationType, att.ExplanationStatus, att.ExplanationReason,
		att.ReviewedBy, att.ReviewerComment,
	).Scan(&att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, pgx.ErrNoRows
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string, clinicID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.id = $1 AND a.clinic_id = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, id, clinicID))
	if err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// GetByKey implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByKey(ctx context.Context, staffID string, clinicID string, date time.Time, shift *attendance.Shift) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	// A full-day record (NULL shift) matches any shift, and a nil shift
	// argument matches any record.
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.staff_id = $1 AND a.clinic_id = $2 AND a.date = $3
		  AND (a.shift IS NULL OR $4::text IS NULL OR a.shift = $4)
		ORDER BY a.shift NULLS FIRST
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, staffID, clinicID, date, shift))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by key: %w", err)
	}
	return &att, nil
}

// ListByStaffAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByStaffAndDate(ctx context.Context, staffID string, clinicID string, date time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.staff_id = $1 AND a.clinic_id = $2 AND a.date = $3
		ORDER BY a.shift NULLS FIRST, a.id
	`
	return a.list(ctx, query, staffID, clinicID, date)
}

// ListByClinicAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByClinicAndDate(ctx context.Context, clinicID string, date time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.clinic_id = $1 AND a.date = $2
		ORDER BY a.staff_id, a.shift NULLS FIRST
	`
	return a.list(ctx, query, clinicID, date)
}

// ListByStaffAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByStaffAndRange(ctx context.Context, staffID string, clinicID string, from, to time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.staff_id = $1 AND a.clinic_id = $2 AND a.date >= $3 AND a.date <= $4
		ORDER BY a.date, a.shift NULLS FIRST
	`
	return a.list(ctx, query, staffID, clinicID, from, to)
}

func (a *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var out []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		out = append(out, att)
	}
	return out, rows.Err()
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			check_in = $1, check_out = $2,
			status = $3, verification_status = $4, similarity_score = $5,
			expected_work_hours = $6, actual_work_hours = $7, note = $8,
			explanation_type = $9, explanation_status = $10, explanation_reason = $11,
			reviewed_by = $12, reviewer_comment = $13,
			updated_at = NOW()
		WHERE id = $14 AND clinic_id = $15
	`

	tag, err := q.Exec(ctx, query,
		att.CheckIn, att.CheckOut,
		att.Status, att.VerificationStatus, att.SimilarityScore,
		att.ExpectedWorkHours, att.ActualWorkHours, att.Note,
		att.ExplanationType, att.ExplanationStatus, att.ExplanationReason,
		att.ReviewedBy, att.ReviewerComment,
		att.ID, att.ClinicID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, clinicID string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "a.clinic_id = $1"
	args := []interface{}{clinicID}
	argIdx := 2

	if filter.StaffID != nil && *filter.StaffID != "" {
		baseWhere += fmt.Sprintf(" AND a.staff_id = $%d", argIdx)
		args = append(args, *filter.StaffID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.DateFrom != nil && *filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil && *filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`, s.full_name
		FROM attendances a
		LEFT JOIN staff s ON s.id = a.staff_id
		WHERE `+baseWhere+`
		ORDER BY a.date, a.id
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var out []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.StaffID, &att.ClinicID, &att.Date, &att.Shift,
			&att.CheckIn, &att.CheckOut,
			&att.Status, &att.VerificationStatus, &att.SimilarityScore,
			&att.ExpectedWorkHours, &att.ActualWorkHours, &att.Note,
			&att.ExplanationType, &att.ExplanationStatus, &att.ExplanationReason,
			&att.ReviewedBy, &att.ReviewerComment,
			&att.CreatedAt, &att.UpdatedAt,
			&att.StaffName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		out = append(out, att)
	}
	return out, total, rows.Err()
}
