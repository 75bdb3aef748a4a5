package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/staff"
)

// StaffRepository is a map-backed staff.StaffRepository.
type StaffRepository struct {
	mu      sync.Mutex
	members map[string]staff.Staff
}

func NewStaffRepository(members ...staff.Staff) *StaffRepository {
	r := &StaffRepository{members: make(map[string]staff.Staff)}
	for _, m := range members {
		r.members[m.ID] = m
	}
	return r
}

func (r *StaffRepository) GetByID(ctx context.Context, id string, clinicID string) (staff.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	if !ok || m.ClinicID != clinicID {
		return staff.Staff{}, pgx.ErrNoRows
	}
	return m, nil
}

func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (staff.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.Email == email {
			return m, nil
		}
	}
	return staff.Staff{}, pgx.ErrNoRows
}

func (r *StaffRepository) ListActiveByClinic(ctx context.Context, clinicID string) ([]staff.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []staff.Staff
	for _, m := range r.members {
		if m.ClinicID == clinicID && m.IsActive {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *StaffRepository) ListClinicIDs(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for _, m := range r.members {
		if m.IsActive && !seen[m.ClinicID] {
			seen[m.ClinicID] = true
			out = append(out, m.ClinicID)
		}
	}
	sort.Strings(out)
	return out, nil
}
