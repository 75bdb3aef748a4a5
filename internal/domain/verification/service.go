package verification

import "context"

// Service is the two-factor verification gate guarding check-in/out.
type Service interface {
	// Verify combines the biometric similarity check and the network
	// whitelist check. A failing biometric check always returns an error
	// (ErrBiometricRejected, ErrEmbeddingDimensionMismatch or
	// ErrEmbeddingNotRegistered). A failing network check returns
	// ErrNetworkRejected only while enforcement is on; otherwise the
	// failure is reflected in the Result and logged.
	Verify(ctx context.Context, staffID string, clinicID string, sample []float64, ssid string, bssid string) (Result, error)
}
