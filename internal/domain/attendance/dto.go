package attendance

import (
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	StaffID  string    `json:"-"`
	ClinicID string    `json:"-"`
	Shift    *Shift    `json:"shift,omitempty"`
	Sample   []float64 `json:"biometric_sample"`
	SSID     string    `json:"network_ssid"`
	BSSID    string    `json:"network_bssid"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if validator.IsEmpty(r.ClinicID) {
		errs = append(errs, validator.ValidationError{
			Field:   "clinic_id",
			Message: "clinic_id is required",
		})
	}

	if len(r.Sample) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "biometric_sample",
			Message: "biometric_sample is required",
		})
	}

	if validator.IsEmpty(r.SSID) {
		errs = append(errs, validator.ValidationError{
			Field:   "network_ssid",
			Message: "network_ssid is required",
		})
	}

	if validator.IsEmpty(r.BSSID) {
		errs = append(errs, validator.ValidationError{
			Field:   "network_bssid",
			Message: "network_bssid is required",
		})
	} else if !validator.IsValidBSSID(r.BSSID) {
		errs = append(errs, validator.ValidationError{
			Field:   "network_bssid",
			Message: "network_bssid must be a MAC address like AA:BB:CC:DD:EE:FF",
		})
	}

	if r.Shift != nil && !validator.IsInSlice(string(*r.Shift), ShiftValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be MORNING or AFTERNOON",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	StaffID  string    `json:"-"`
	ClinicID string    `json:"-"`
	Sample   []float64 `json:"biometric_sample"`
	SSID     string    `json:"network_ssid"`
	BSSID    string    `json:"network_bssid"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if validator.IsEmpty(r.ClinicID) {
		errs = append(errs, validator.ValidationError{
			Field:   "clinic_id",
			Message: "clinic_id is required",
		})
	}

	if len(r.Sample) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "biometric_sample",
			Message: "biometric_sample is required",
		})
	}

	if validator.IsEmpty(r.SSID) {
		errs = append(errs, validator.ValidationError{
			Field:   "network_ssid",
			Message: "network_ssid is required",
		})
	}

	if validator.IsEmpty(r.BSSID) {
		errs = append(errs, validator.ValidationError{
			Field:   "network_bssid",
			Message: "network_bssid is required",
		})
	} else if !validator.IsValidBSSID(r.BSSID) {
		errs = append(errs, validator.ValidationError{
			Field:   "network_bssid",
			Message: "network_bssid must be a MAC address like AA:BB:CC:DD:EE:FF",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitExplanationRequest struct {
	AttendanceID string          `json:"-"`
	StaffID      string          `json:"-"`
	ClinicID     string          `json:"-"`
	Type         ExplanationType `json:"type"`
	Reason       string          `json:"reason"`
}

func (r *SubmitExplanationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if !validator.IsInSlice(string(r.Type), ExplanationTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of LATE, ABSENT, MISSING_CHECK_IN, MISSING_CHECK_OUT",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExplanationAction string

const (
	ExplanationActionApprove ExplanationAction = "APPROVE"
	ExplanationActionReject  ExplanationAction = "REJECT"
)

type ProcessExplanationRequest struct {
	AttendanceID string            `json:"-"`
	ReviewerID   string            `json:"-"`
	ClinicID     string            `json:"-"`
	Action       ExplanationAction `json:"action"`
	Comment      *string           `json:"comment,omitempty"`
}

func (r *ProcessExplanationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if r.Action != ExplanationActionApprove && r.Action != ExplanationActionReject {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be APPROVE or REJECT",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// FILTERS
// ========================================

type AttendanceFilter struct {
	StaffID  *string
	Status   *Status
	DateFrom *string
	DateTo   *string
	Page     int
	Limit    int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if f.DateFrom != nil {
		if _, ok := validator.IsValidDate(*f.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be in YYYY-MM-DD format",
			})
		}
	}
	if f.DateTo != nil {
		if _, ok := validator.IsValidDate(*f.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type AttendanceResponse struct {
	ID                 string   `json:"id"`
	StaffID            string   `json:"staff_id"`
	StaffName          *string  `json:"staff_name,omitempty"`
	ClinicID           string   `json:"clinic_id"`
	Date               string   `json:"date"`
	Shift              *string  `json:"shift,omitempty"`
	CheckInTime        *string  `json:"check_in_time,omitempty"`
	CheckOutTime       *string  `json:"check_out_time,omitempty"`
	Status             string   `json:"status"`
	VerificationStatus string   `json:"verification_status"`
	SimilarityScore    *float64 `json:"similarity_score,omitempty"`
	ExpectedWorkHours  *float64 `json:"expected_work_hours,omitempty"`
	ActualWorkHours    *float64 `json:"actual_work_hours,omitempty"`
	Note               *string  `json:"note,omitempty"`
	ExplanationType    *string  `json:"explanation_type,omitempty"`
	ExplanationStatus  string   `json:"explanation_status"`
	ExplanationReason  *string  `json:"explanation_reason,omitempty"`
	ReviewerComment    *string  `json:"reviewer_comment,omitempty"`
	NeedsExplanation   bool     `json:"needs_explanation"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}
