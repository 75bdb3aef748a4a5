package verification

// Embedding is a stored biometric reference vector for a staff member.
type Embedding struct {
	StaffID   string
	Vector    []float64
	Dimension int
}

// Network is an allowed SSID/BSSID pair. SSID matches exactly; BSSID matches
// case-insensitively.
type Network struct {
	SSID  string
	BSSID string
}

type BiometricResult struct {
	Verified   bool    `json:"verified"`
	Similarity float64 `json:"similarity"`
	Message    string  `json:"message"`
}

type NetworkResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Result is the combined two-factor verdict. It is never persisted as its own
// entity; callers fold it into the attendance record. Passed reports whether
// the gate lets the operation through: the biometric check must pass, and the
// network check must pass unless enforcement is disabled.
type Result struct {
	Passed    bool            `json:"passed"`
	Biometric BiometricResult `json:"biometric"`
	Network   NetworkResult   `json:"network"`
}
