package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
)

// ScheduleEntryRepository is a map-backed schedule.ScheduleEntryRepository.
type ScheduleEntryRepository struct {
	mu      sync.Mutex
	entries map[string]schedule.ScheduleEntry
}

func NewScheduleEntryRepository() *ScheduleEntryRepository {
	return &ScheduleEntryRepository{entries: make(map[string]schedule.ScheduleEntry)}
}

func (r *ScheduleEntryRepository) Create(ctx context.Context, entry schedule.ScheduleEntry) (schedule.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *ScheduleEntryRepository) GetByID(ctx context.Context, id string) (schedule.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return schedule.ScheduleEntry{}, pgx.ErrNoRows
	}
	return entry, nil
}

func (r *ScheduleEntryRepository) ListByDoctorAndDate(ctx context.Context, doctorID string, clinicID string, date time.Time) ([]schedule.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []schedule.ScheduleEntry
	for _, entry := range r.entries {
		if entry.DoctorID != doctorID || !sameDay(entry.Date, date) {
			continue
		}
		if clinicID != "" && entry.ClinicID != clinicID {
			continue
		}
		out = append(out, entry)
	}
	sortEntries(out)
	return out, nil
}

func (r *ScheduleEntryRepository) ListByClinicAndRange(ctx context.Context, clinicID string, from, to time.Time) ([]schedule.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []schedule.ScheduleEntry
	for _, entry := range r.entries {
		if entry.ClinicID != clinicID {
			continue
		}
		if entry.Date.Before(startOfDay(from)) || entry.Date.After(endOfDay(to)) {
			continue
		}
		out = append(out, entry)
	}
	sortEntries(out)
	return out, nil
}

func (r *ScheduleEntryRepository) UpdateStatus(ctx context.Context, id string, status schedule.EntryStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return pgx.ErrNoRows
	}
	entry.Status = status
	entry.UpdatedAt = time.Now()
	r.entries[id] = entry
	return nil
}

func sortEntries(list []schedule.ScheduleEntry) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		if !list[i].StartTime.Equal(list[j].StartTime) {
			return list[i].StartTime.Before(list[j].StartTime)
		}
		return list[i].ID < list[j].ID
	})
}
