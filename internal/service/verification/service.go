package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/verification"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/validator"
)

// Config holds the gate thresholds; values come from the app configuration.
type Config struct {
	SimilarityThreshold float64
	EmbeddingDimension  int
	EnforceNetworkCheck bool
	GlobalWhitelist     []verification.Network
}

type VerificationServiceImpl struct {
	cfg Config
	verification.EmbeddingRepository
	verification.NetworkRepository
}

func NewVerificationService(
	cfg Config,
	embeddingRepo verification.EmbeddingRepository,
	networkRepo verification.NetworkRepository,
) verification.Service {
	return &VerificationServiceImpl{
		cfg:                 cfg,
		EmbeddingRepository: embeddingRepo,
		NetworkRepository:   networkRepo,
	}
}

// Verify implements verification.Service.
func (s *VerificationServiceImpl) Verify(ctx context.Context, staffID string, clinicID string, sample []float64, ssid string, bssid string) (verification.Result, error) {
	result := verification.Result{}

	ref, err := s.EmbeddingRepository.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			result.Biometric.Message = "no reference embedding registered"
			return result, verification.ErrEmbeddingNotRegistered
		}
		return result, fmt.Errorf("failed to get reference embedding: %w", err)
	}

	// A wrong-sized vector is a malformed capture, not a bad match; it must
	// be reported distinctly from a low similarity score.
	if len(sample) != s.cfg.EmbeddingDimension || len(ref.Vector) != s.cfg.EmbeddingDimension {
		result.Biometric.Message = fmt.Sprintf(
			"embedding dimension mismatch: sample %d, reference %d, expected %d",
			len(sample), len(ref.Vector), s.cfg.EmbeddingDimension,
		)
		return result, fmt.Errorf("%s: %w", result.Biometric.Message, verification.ErrEmbeddingDimensionMismatch)
	}

	similarity := cosineSimilarity(sample, ref.Vector)
	result.Biometric.Similarity = similarity

	if similarity < s.cfg.SimilarityThreshold {
		result.Biometric.Message = fmt.Sprintf(
			"similarity %.4f below threshold %.2f", similarity, s.cfg.SimilarityThreshold,
		)
		// Biometric failure is always fatal, regardless of the network
		// enforcement flag.
		return result, fmt.Errorf("%s: %w", result.Biometric.Message, verification.ErrBiometricRejected)
	}

	result.Biometric.Verified = true
	result.Biometric.Message = "biometric verified"

	valid, err := s.networkValid(ctx, clinicID, ssid, bssid)
	if err != nil {
		return result, err
	}
	result.Network.Valid = valid

	if !valid {
		result.Network.Message = fmt.Sprintf("network %q (%s) is not whitelisted for clinic %s", ssid, bssid, clinicID)
		if s.cfg.EnforceNetworkCheck {
			return result, fmt.Errorf("%s: %w", result.Network.Message, verification.ErrNetworkRejected)
		}
		// Deliberately permissive mode for non-production environments.
		slog.Warn("Network validation failed but enforcement is disabled, allowing request",
			"staff_id", staffID,
			"clinic_id", clinicID,
			"ssid", ssid,
			"bssid", bssid,
		)
		result.Passed = true
		return result, nil
	}

	result.Network.Message = "network whitelisted"
	result.Passed = true
	return result, nil
}

func (s *VerificationServiceImpl) networkValid(ctx context.Context, clinicID string, ssid string, bssid string) (bool, error) {
	whitelist, err := s.NetworkRepository.ListByClinic(ctx, clinicID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("failed to get clinic network whitelist: %w", err)
	}
	if len(whitelist) == 0 {
		whitelist = s.cfg.GlobalWhitelist
	}

	normalized := validator.NormalizeBSSID(bssid)
	for _, network := range whitelist {
		if network.SSID == ssid && validator.NormalizeBSSID(network.BSSID) == normalized {
			return true, nil
		}
	}
	return false, nil
}

// cosineSimilarity returns dot(a,b)/(|a||b|), or 0 for a zero-norm vector.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
