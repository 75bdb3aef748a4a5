package verification

import "context"

// EmbeddingRepository fetches stored biometric references.
type EmbeddingRepository interface {
	// GetByStaffID returns the reference embedding for a staff member.
	// Implementations return pgx.ErrNoRows when none is registered.
	GetByStaffID(ctx context.Context, staffID string) (Embedding, error)
}

// NetworkRepository fetches per-clinic network whitelists. An empty list for
// a clinic means the caller should fall back to the global whitelist.
type NetworkRepository interface {
	ListByClinic(ctx context.Context, clinicID string) ([]Network, error)
}
