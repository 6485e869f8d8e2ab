package shift

import (
	"errors"
	"strconv"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/validator"
)

// ========================================
// SHIFT ASSIGNMENT DTOs
// ========================================

type CreateShiftRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"` // YYYY-MM-DD
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Location      string  `json:"location"`
	WorkType      string  `json:"work_type"`
	BreakDuration int     `json:"break_duration"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.Location != "" && !validator.IsInSlice(r.Location, LocationValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must be one of: Office, Home, Field, Client Site",
		})
	}

	if r.WorkType != "" && !validator.IsInSlice(r.WorkType, WorkTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be one of: Regular, Overtime, Weekend overtime, Client-side overtime",
		})
	}

	if r.BreakDuration < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration",
			Message: "break_duration must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkCreateShiftRequest struct {
	Shifts []CreateShiftRequest `json:"shifts"`
}

func (r *BulkCreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Shifts) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "shifts",
			Message: "at least one shift is required",
		})
		return errs
	}

	for i, s := range r.Shifts {
		if err := s.Validate(); err != nil {
			var itemErrs validator.ValidationErrors
			if errors.As(err, &itemErrs) {
				for _, e := range itemErrs {
					errs = append(errs, validator.ValidationError{
						Field:   "shifts[" + strconv.Itoa(i) + "]." + e.Field,
						Message: e.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID            string  `json:"-"`
	Date          *string `json:"date,omitempty"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	Location      *string `json:"location,omitempty"`
	WorkType      *string `json:"work_type,omitempty"`
	BreakDuration *int    `json:"break_duration,omitempty"`
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.Location != nil && !validator.IsInSlice(*r.Location, LocationValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must be one of: Office, Home, Field, Client Site",
		})
	}

	if r.WorkType != nil && !validator.IsInSlice(*r.WorkType, WorkTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be one of: Regular, Overtime, Weekend overtime, Client-side overtime",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a recognized shift status",
		})
	}

	if r.BreakDuration != nil && *r.BreakDuration < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration",
			Message: "break_duration must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConflictCheckRequest struct {
	EmployeeID          string `json:"employee_id"`
	Date                string `json:"date"` // YYYY-MM-DD
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	ExcludeAssignmentID string `json:"exclude_assignment_id,omitempty"`
}

func (r *ConflictCheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SwapShiftRequest struct {
	ShiftID       string  `json:"-"`
	RequestedWith string  `json:"requested_with"`
	Reason        *string `json:"reason,omitempty"`
}

func (r *SwapShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestedWith) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_with",
			Message: "requested_with is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResolveSwapRequest struct {
	ShiftID string `json:"-"`
}

type ShiftFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`
	Location   *string `json:"location,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ShiftFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a recognized shift status",
		})
	}

	if f.Location != nil && !validator.IsInSlice(*f.Location, LocationValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must be one of: Office, Home, Field, Client Site",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SwapRequestResponse struct {
	RequestedBy   string  `json:"requested_by"`
	RequestedWith string  `json:"requested_with"`
	Status        string  `json:"status"`
	Reason        *string `json:"reason,omitempty"`
	RequestedAt   string  `json:"requested_at"`
	ResolvedAt    *string `json:"resolved_at,omitempty"`
}

type ShiftResponse struct {
	ID              string               `json:"id"`
	EmployeeID      string               `json:"employee_id"`
	EmployeeName    *string              `json:"employee_name,omitempty"`
	Date            string               `json:"date"`
	StartTime       string               `json:"start_time"`
	EndTime         string               `json:"end_time"`
	Location        string               `json:"location"`
	WorkType        string               `json:"work_type"`
	BreakDuration   int                  `json:"break_duration"`
	ScheduledHours  float64              `json:"scheduled_hours"`
	Status          string               `json:"status"`
	AssignedBy      string               `json:"assigned_by"`
	Notes           *string              `json:"notes,omitempty"`
	SwapRequest     *SwapRequestResponse `json:"swap_request,omitempty"`
	ActualStartTime *string              `json:"actual_start_time,omitempty"`
	ActualEndTime   *string              `json:"actual_end_time,omitempty"`
	TimeEntryID     *string              `json:"time_entry_id,omitempty"`
	CreatedAt       string               `json:"created_at"`
	UpdatedAt       string               `json:"updated_at"`
}

type ListShiftResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Shifts     []ShiftResponse `json:"shifts"`
}
