package verification

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/verification"
)

type fakeEmbeddingRepo struct {
	embeddings map[string]verification.Embedding
}

func (f *fakeEmbeddingRepo) GetByStaffID(ctx context.Context, staffID string) (verification.Embedding, error) {
	emb, ok := f.embeddings[staffID]
	if !ok {
		return verification.Embedding{}, pgx.ErrNoRows
	}
	return emb, nil
}

type fakeNetworkRepo struct {
	byClinic map[string][]verification.Network
}

func (f *fakeNetworkRepo) ListByClinic(ctx context.Context, clinicID string) ([]verification.Network, error) {
	return f.byClinic[clinicID], nil
}

func newTestService(enforce bool, byClinic map[string][]verification.Network) verification.Service {
	cfg := Config{
		SimilarityThreshold: 0.75,
		EmbeddingDimension:  4,
		EnforceNetworkCheck: enforce,
		GlobalWhitelist: []verification.Network{
			{SSID: "GlobalNet", BSSID: "AA:AA:AA:AA:AA:AA"},
		},
	}
	embeddings := map[string]verification.Embedding{
		"staff-1": {StaffID: "staff-1", Vector: []float64{1, 0, 0, 0}, Dimension: 4},
	}
	return NewVerificationService(cfg, &fakeEmbeddingRepo{embeddings: embeddings}, &fakeNetworkRepo{byClinic: byClinic})
}

func clinicWhitelist() map[string][]verification.Network {
	return map[string][]verification.Network{
		"clinic-1": {{SSID: "ClinicWiFi", BSSID: "DE:AD:BE:EF:00:01"}},
	}
}

func TestVerify_Success(t *testing.T) {
	t.Parallel()
	svc := newTestService(true, clinicWhitelist())

	result, err := svc.Verify(context.Background(), "staff-1", "clinic-1", []float64{1, 0, 0, 0}, "ClinicWiFi", "de:ad:be:ef:00:01")

	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.True(t, result.Biometric.Verified)
	assert.True(t, result.Network.Valid)
	assert.InDelta(t, 1.0, result.Biometric.Similarity, 1e-9)
}

func TestVerify_BiometricBelowThreshold(t *testing.T) {
	t.Parallel()
	svc := newTestService(true, clinicWhitelist())

	// Orthogonal vector, similarity 0.
	result, err := svc.Verify(context.Background(), "staff-1", "clinic-1", []float64{0, 1, 0, 0}, "ClinicWiFi", "DE:AD:BE:EF:00:01")

	require.ErrorIs(t, err, verification.ErrBiometricRejected)
	assert.False(t, result.Passed)
	assert.False(t, result.Biometric.Verified)
	assert.InDelta(t, 0.0, result.Biometric.Similarity, 1e-9)
}

func TestVerify_BiometricFatalEvenWhenEnforcementOff(t *testing.T) {
	t.Parallel()
	svc := newTestService(false, clinicWhitelist())

	_, err := svc.Verify(context.Background(), "staff-1", "clinic-1", []float64{0, 1, 0, 0}, "WrongNet", "00:00:00:00:00:00")

	require.ErrorIs(t, err, verification.ErrBiometricRejected)
}

func TestVerify_DimensionMismatch(t *testing.T) {
	t.Parallel()
	svc := newTestService(true, clinicWhitelist())

	_, err := svc.Verify(context.Background(), "staff-1", "clinic-1", []float64{1, 0, 0}, "ClinicWiFi", "DE:AD:BE:EF:00:01")

	require.ErrorIs(t, err, verification.ErrEmbeddingDimensionMismatch)
	assert.NotErrorIs(t, err, verification.ErrBiometricRejected)
}

func TestVerify_EmbeddingNotRegistered(t *testing.T) {
	t.Parallel()
	svc := newTestService(true, clinicWhitelist())

	_, err := svc.Verify(context.Background(), "staff-unknown", "clinic-1", []float64{1, 0, 0, 0}, "ClinicWiFi", "DE:AD:BE:EF:00:01")

	require.ErrorIs(t, err, verification.ErrEmbeddingNotRegistered)
}

func TestVerify_NetworkRejectedWhenEnforced(t *testing.T) {
	t.Parallel()
	svc := newTestService(true, clinicWhitelist())

	result, err := svc.Verify(context.Background(), "staff-1", "clinic-1", []float64{1, 0, 0, 0}, "CoffeeShop", "11:22:33:44:55:66")

	require.ErrorIs(t, err, verification.ErrNetworkRejected)
	assert.False(t, result.Passed)
	assert.True(t, result.Biometric.Verified)
	assert.False(t, result.Network.Valid)
}

func TestVerify_NetworkFailureAllowedWhenNotEnforced(t *testing.T) {
	t.Parallel()
	svc := newTestService(false, clinicWhitelist())

	result, err := svc.Verify(context.Background(), "staff-1", "clinic-1", []float64{1, 0, 0, 0}, "CoffeeShop", "11:22:33:44:55:66")

	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.False(t, result.Network.Valid)
}

func TestVerify_GlobalWhitelistFallback(t *testing.T) {
	t.Parallel()
	// clinic-2 has no whitelist of its own.
	svc := newTestService(true, clinicWhitelist())

	result, err := svc.Verify(context.Background(), "staff-1", "clinic-2", []float64{1, 0, 0, 0}, "GlobalNet", "aa-aa-aa-aa-aa-aa")

	require.NoError(t, err)
	assert.True(t, result.Network.Valid)
}

func TestVerify_SSIDMatchIsCaseSensitive(t *testing.T) {
	t.Parallel()
	svc := newTestService(true, clinicWhitelist())

	_, err := svc.Verify(context.Background(), "staff-1", "clinic-1", []float64{1, 0, 0, 0}, "clinicwifi", "DE:AD:BE:EF:00:01")

	require.ErrorIs(t, err, verification.ErrNetworkRejected)
}
