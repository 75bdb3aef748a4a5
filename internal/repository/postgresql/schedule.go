package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/database"
)

type scheduleEntryRepository struct {
	db *database.DB
}

func NewScheduleEntryRepository(db *database.DB) schedule.ScheduleEntryRepository {
	return &scheduleEntryRepository{db: db}
}

const scheduleEntryColumns = `
	e.id, e.doctor_id, e.clinic_id, e.room_id, e.date,
	e.start_time, e.end_time, e.status, e.created_at, e.updated_at`

func scanScheduleEntry(row pgx.Row) (schedule.ScheduleEntry, error) {
	var entry schedule.ScheduleEntry
	err := row.Scan(
		&entry.ID, &entry.DoctorID, &entry.ClinicID, &entry.RoomID, &entry.Date,
		&entry.StartTime, &entry.EndTime, &entry.Status, &entry.CreatedAt, &entry.UpdatedAt,
	)
	return entry, err
}

// Create implements schedule.ScheduleEntryRepository.
func (s *scheduleEntryRepository) Create(ctx context.Context, entry schedule.ScheduleEntry) (schedule.ScheduleEntry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO schedule_entries (
			id, doctor_id, clinic_id, room_id, date, start_time, end_time, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID, entry.DoctorID, entry.ClinicID, entry.RoomID,
		entry.Date, entry.StartTime, entry.EndTime, entry.Status,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return schedule.ScheduleEntry{}, fmt.Errorf("failed to create schedule entry: %w", err)
	}

	return entry, nil
}

// GetByID implements schedule.ScheduleEntryRepository.
func (s *scheduleEntryRepository) GetByID(ctx context.Context, id string) (schedule.ScheduleEntry, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + scheduleEntryColumns + ` FROM schedule_entries e WHERE e.id = $1`

	entry, err := scanScheduleEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		return schedule.ScheduleEntry{}, err
	}
	return entry, nil
}

// ListByDoctorAndDate implements schedule.ScheduleEntryRepository.
func (s *scheduleEntryRepository) ListByDoctorAndDate(ctx context.Context, doctorID string, clinicID string, date time.Time) ([]schedule.ScheduleEntry, error) {
	query := `
		SELECT ` + scheduleEntryColumns + `
		FROM schedule_entries e
		WHERE e.doctor_id = $1 AND e.date = $2
		  AND ($3 = '' OR e.clinic_id = $3)
		ORDER BY e.start_time, e.id
	`
	return s.list(ctx, query, doctorID, date, clinicID)
}

// ListByClinicAndRange implements schedule.ScheduleEntryRepository.
func (s *scheduleEntryRepository) ListByClinicAndRange(ctx context.Context, clinicID string, from, to time.Time) ([]schedule.ScheduleEntry, error) {
	query := `
		SELECT ` + scheduleEntryColumns + `
		FROM schedule_entries e
		WHERE e.clinic_id = $1 AND e.date >= $2 AND e.date <= $3
		ORDER BY e.date, e.start_time, e.id
	`
	return s.list(ctx, query, clinicID, from, to)
}

func (s *scheduleEntryRepository) list(ctx context.Context, query string, args ...interface{}) ([]schedule.ScheduleEntry, error) {
	q := GetQuerier(ctx, s.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	defer rows.Close()

	var out []schedule.ScheduleEntry
	for rows.Next() {
		entry, err := scanScheduleEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// UpdateStatus implements schedule.ScheduleEntryRepository.
func (s *scheduleEntryRepository) UpdateStatus(ctx context.Context, id string, status schedule.EntryStatus) error {
	q := GetQuerier(ctx, s.db)

	query := `UPDATE schedule_entries SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update schedule entry status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
