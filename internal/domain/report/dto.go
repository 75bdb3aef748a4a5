package report

// DailySummaryResponse aggregates one clinic day by attendance status.
type DailySummaryResponse struct {
	ClinicID string `json:"clinic_id"`
	Date     string `json:"date"`

	Total           int `json:"total"`
	OnTime          int `json:"on_time"`
	Late            int `json:"late"`
	Absent          int `json:"absent"`
	ApprovedLate    int `json:"approved_late"`
	ApprovedAbsence int `json:"approved_absence"`
	ApprovedPresent int `json:"approved_present"`

	Verified             int `json:"verified"`
	VerificationFailures int `json:"verification_failures"`
	PendingExplanations  int `json:"pending_explanations"`
}

// MonthlySummaryResponse aggregates one staff member's month.
type MonthlySummaryResponse struct {
	StaffID  string `json:"staff_id"`
	ClinicID string `json:"clinic_id"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`

	DaysOnTime          int `json:"days_on_time"`
	DaysLate            int `json:"days_late"`
	DaysAbsent          int `json:"days_absent"`
	DaysApprovedLate    int `json:"days_approved_late"`
	DaysApprovedAbsence int `json:"days_approved_absence"`
	DaysApprovedPresent int `json:"days_approved_present"`

	TotalExpectedHours float64 `json:"total_expected_hours"`
	TotalActualHours   float64 `json:"total_actual_hours"`

	// AttendanceRate counts ON_TIME, LATE and the approved-present buckets
	// against all recorded days.
	AttendanceRate float64 `json:"attendance_rate"`
}
