package verification

import "errors"

var (
	ErrEmbeddingNotRegistered     = errors.New("no biometric reference registered for this staff member")
	ErrEmbeddingDimensionMismatch = errors.New("biometric sample dimension does not match the reference")
	ErrBiometricRejected          = errors.New("biometric verification failed: similarity below threshold")
	ErrNetworkRejected            = errors.New("network validation failed: SSID/BSSID not in clinic whitelist")
)
