package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
)

// AttendanceRepository is a map-backed attendance.AttendanceRepository.
type AttendanceRepository struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]attendance.Attendance)}
}

func (r *AttendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// NULLS NOT DISTINCT key over (staff, clinic, date, shift), matching
	// the database constraint.
	for _, existing := range r.records {
		if existing.StaffID != att.StaffID || existing.ClinicID != att.ClinicID || !sameDay(existing.Date, att.Date) {
			continue
		}
		if sameShift(existing.Shift, att.Shift) {
			return attendance.Attendance{}, pgx.ErrNoRows
		}
	}

	now := time.Now()
	att.CreatedAt = now
	att.UpdatedAt = now
	r.records[att.ID] = att
	return att, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string, clinicID string) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	att, ok := r.records[id]
	if !ok || att.ClinicID != clinicID {
		return attendance.Attendance{}, pgx.ErrNoRows
	}
	return att, nil
}

func (r *AttendanceRepository) GetByKey(ctx context.Context, staffID string, clinicID string, date time.Time, shift *attendance.Shift) (*attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, att := range r.records {
		if att.StaffID != staffID || att.ClinicID != clinicID || !sameDay(att.Date, date) {
			continue
		}
		if att.Shift == nil || shift == nil || *att.Shift == *shift {
			found := att
			return &found, nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepository) ListByStaffAndDate(ctx context.Context, staffID string, clinicID string, date time.Time) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Attendance
	for _, att := range r.records {
		if att.StaffID == staffID && att.ClinicID == clinicID && sameDay(att.Date, date) {
			out = append(out, att)
		}
	}
	sortAttendances(out)
	return out, nil
}

func (r *AttendanceRepository) ListByClinicAndDate(ctx context.Context, clinicID string, date time.Time) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Attendance
	for _, att := range r.records {
		if att.ClinicID == clinicID && sameDay(att.Date, date) {
			out = append(out, att)
		}
	}
	sortAttendances(out)
	return out, nil
}

func (r *AttendanceRepository) ListByStaffAndRange(ctx context.Context, staffID string, clinicID string, from, to time.Time) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Attendance
	for _, att := range r.records {
		if att.StaffID != staffID || att.ClinicID != clinicID {
			continue
		}
		if att.Date.Before(startOfDay(from)) || att.Date.After(endOfDay(to)) {
			continue
		}
		out = append(out, att)
	}
	sortAttendances(out)
	return out, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[att.ID]; !ok {
		return pgx.ErrNoRows
	}
	att.UpdatedAt = time.Now()
	r.records[att.ID] = att
	return nil
}

func (r *AttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, clinicID string) ([]attendance.Attendance, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []attendance.Attendance
	for _, att := range r.records {
		if att.ClinicID != clinicID {
			continue
		}
		if filter.StaffID != nil && att.StaffID != *filter.StaffID {
			continue
		}
		if filter.Status != nil && att.Status != *filter.Status {
			continue
		}
		if filter.DateFrom != nil {
			from, _ := time.ParseInLocation("2006-01-02", *filter.DateFrom, att.Date.Location())
			if att.Date.Before(from) {
				continue
			}
		}
		if filter.DateTo != nil {
			to, _ := time.ParseInLocation("2006-01-02", *filter.DateTo, att.Date.Location())
			if att.Date.After(endOfDay(to)) {
				continue
			}
		}
		matched = append(matched, att)
	}
	sortAttendances(matched)

	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func sortAttendances(list []attendance.Attendance) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		return list[i].ID < list[j].ID
	})
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func sameShift(a, b *attendance.Shift) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
