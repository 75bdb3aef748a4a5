package leave

import (
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	StaffID    string      `json:"-"`
	ClinicID   string      `json:"-"`
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	LeaveType  string      `json:"leave_type"`
	ShiftScope *ShiftScope `json:"shift_scope,omitempty"`
	Reason     string      `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
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

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.ShiftScope != nil && !validator.IsInSlice(string(*r.ShiftScope), ShiftScopeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_scope",
			Message: "shift_scope must be MORNING, AFTERNOON or FULL_DAY",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveAction string

const (
	LeaveActionApprove LeaveAction = "APPROVE"
	LeaveActionReject  LeaveAction = "REJECT"
)

type ProcessLeaveRequestRequest struct {
	RequestID  string      `json:"-"`
	ApproverID string      `json:"-"`
	Action     LeaveAction `json:"action"`
	Comment    *string     `json:"comment,omitempty"`
}

func (r *ProcessLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if r.Action != LeaveActionApprove && r.Action != LeaveActionReject {
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

type LeaveRequestFilter struct {
	Status *LeaveRequestStatus
	Page   int
	Limit  int
}

func (f *LeaveRequestFilter) Validate() error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	return nil
}

type LeaveRequestResponse struct {
	ID          string  `json:"id"`
	StaffID     string  `json:"staff_id"`
	StaffName   *string `json:"staff_name,omitempty"`
	ClinicID    string  `json:"clinic_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	LeaveType   string  `json:"leave_type"`
	ShiftScope  *string `json:"shift_scope,omitempty"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	SubmittedAt string  `json:"submitted_at"`
}

type ListLeaveRequestResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Showing    string                 `json:"showing"`
	Requests   []LeaveRequestResponse `json:"requests"`
}
