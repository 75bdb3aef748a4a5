package postgresql

import (
	"context"
	"fmt"

	"github.com/sunshine-dental/clinic-backend-go/internal/domain/verification"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/database"
)

type embeddingRepository struct {
	db *database.DB
}

func NewEmbeddingRepository(db *database.DB) verification.EmbeddingRepository {
	return &embeddingRepository{db: db}
}

// GetByStaffID implements verification.EmbeddingRepository. The pgx.ErrNoRows
// from an unregistered staff member passes through unchanged.
func (e *embeddingRepository) GetByStaffID(ctx context.Context, staffID string) (verification.Embedding, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT staff_id, vector, dimension
		FROM biometric_embeddings
		WHERE staff_id = $1
	`

	var emb verification.Embedding
	err := q.QueryRow(ctx, query, staffID).Scan(&emb.StaffID, &emb.Vector, &emb.Dimension)
	if err != nil {
		return verification.Embedding{}, err
	}
	return emb, nil
}

type networkRepository struct {
	db *database.DB
}

func NewNetworkRepository(db *database.DB) verification.NetworkRepository {
	return &networkRepository{db: db}
}

// ListByClinic implements verification.NetworkRepository.
func (n *networkRepository) ListByClinic(ctx context.Context, clinicID string) ([]verification.Network, error) {
	q := GetQuerier(ctx, n.db)

	query := `
		SELECT ssid, bssid
		FROM clinic_networks
		WHERE clinic_id = $1
		ORDER BY ssid
	`

	rows, err := q.Query(ctx, query, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinic networks: %w", err)
	}
	defer rows.Close()

	var out []verification.Network
	for rows.Next() {
		var nw verification.Network
		if err := rows.Scan(&nw.SSID, &nw.BSSID); err != nil {
			return nil, fmt.Errorf("failed to scan clinic network: %w", err)
		}
		out = append(out, nw)
	}
	return out, rows.Err()
}
