package inmemory

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/verification"
)

// EmbeddingRepository is a map-backed verification.EmbeddingRepository.
type EmbeddingRepository struct {
	mu         sync.Mutex
	embeddings map[string]verification.Embedding
}

func NewEmbeddingRepository(embeddings ...verification.Embedding) *EmbeddingRepository {
	r := &EmbeddingRepository{embeddings: make(map[string]verification.Embedding)}
	for _, e := range embeddings {
		r.embeddings[e.StaffID] = e
	}
	return r
}

func (r *EmbeddingRepository) GetByStaffID(ctx context.Context, staffID string) (verification.Embedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.embeddings[staffID]
	if !ok {
		return verification.Embedding{}, pgx.ErrNoRows
	}
	return e, nil
}

// NetworkRepository is a map-backed verification.NetworkRepository.
type NetworkRepository struct {
	mu       sync.Mutex
	networks map[string][]verification.Network
}

func NewNetworkRepository() *NetworkRepository {
	return &NetworkRepository{networks: make(map[string][]verification.Network)}
}

func (r *NetworkRepository) Add(clinicID string, nw verification.Network) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.networks[clinicID] = append(r.networks[clinicID], nw)
}

func (r *NetworkRepository) ListByClinic(ctx context.Context, clinicID string) ([]verification.Network, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]verification.Network(nil), r.networks[clinicID]...), nil
}
