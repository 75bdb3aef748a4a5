package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/leave"
)

// LeaveRequestRepository is a map-backed leave.LeaveRequestRepository.
type LeaveRequestRepository struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{requests: make(map[string]leave.LeaveRequest)}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	r.requests[request.ID] = request
	return request, nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, pgx.ErrNoRows
	}
	return request, nil
}

func (r *LeaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[request.ID]; !ok {
		return pgx.ErrNoRows
	}
	request.UpdatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}

func (r *LeaveRequestRepository) ListByClinic(ctx context.Context, clinicID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return r.list(clinicID, "", filter)
}

func (r *LeaveRequestRepository) ListByStaff(ctx context.Context, staffID string, clinicID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return r.list(clinicID, staffID, filter)
}

func (r *LeaveRequestRepository) list(clinicID, staffID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []leave.LeaveRequest
	for _, request := range r.requests {
		if request.ClinicID != clinicID {
			continue
		}
		if staffID != "" && request.StaffID != staffID {
			continue
		}
		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		matched = append(matched, request)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].SubmittedAt.Equal(matched[j].SubmittedAt) {
			return matched[i].SubmittedAt.After(matched[j].SubmittedAt)
		}
		return matched[i].ID < matched[j].ID
	})

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
