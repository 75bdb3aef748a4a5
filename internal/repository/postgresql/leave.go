package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/leave"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	l.id, l.staff_id, l.clinic_id, l.start_date, l.end_date,
	l.leave_type, l.shift_scope, l.reason, l.status,
	l.approved_by, l.approved_at, l.cancelled_at,
	l.submitted_at, l.created_at, l.updated_at`

func scanLeaveRequest(row pgx.Row, withStaffName bool) (leave.LeaveRequest, error) {
	var request leave.LeaveRequest
	dest := []interface{}{
		&request.ID, &request.StaffID, &request.ClinicID, &request.StartDate, &request.EndDate,
		&request.LeaveType, &request.ShiftScope, &request.Reason, &request.Status,
		&request.ApprovedBy, &request.ApprovedAt, &request.CancelledAt,
		&request.SubmittedAt, &request.CreatedAt, &request.UpdatedAt,
	}
	if withStaffName {
		dest = append(dest, &request.StaffName)
	}
	return request, row.Scan(dest...)
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			id, staff_id, clinic_id, start_date, end_date,
			leave_type, shift_scope, reason, status, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.StaffID, request.ClinicID, request.StartDate, request.EndDate,
		request.LeaveType, request.ShiftScope, request.Reason, request.Status, request.SubmittedAt,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests l WHERE l.id = $1`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id), false)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// Update implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests SET
			reason = $1, status = $2,
			approved_by = $3, approved_at = $4, cancelled_at = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		request.Reason, request.Status,
		request.ApprovedBy, request.ApprovedAt, request.CancelledAt,
		request.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByClinic implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListByClinic(ctx context.Context, clinicID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	baseWhere := "l.clinic_id = $1"
	args := []interface{}{clinicID}
	return l.list(ctx, baseWhere, args, filter)
}

// ListByStaff implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListByStaff(ctx context.Context, staffID string, clinicID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	baseWhere := "l.staff_id = $1 AND l.clinic_id = $2"
	args := []interface{}{staffID, clinicID}
	return l.list(ctx, baseWhere, args, filter)
}

func (l *leaveRequestRepository) list(ctx context.Context, baseWhere string, args []interface{}, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, l.db)

	argIdx := len(args) + 1
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM leave_requests l WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+leaveRequestColumns+`, s.full_name
		FROM leave_requests l
		LEFT JOIN staff s ON s.id = l.staff_id
		WHERE `+baseWhere+`
		ORDER BY l.submitted_at DESC, l.id
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var out []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		out = append(out, request)
	}
	return out, total, rows.Err()
}
