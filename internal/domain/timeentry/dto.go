package timeentry

import (
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/validator"
)

// ========================================
// TIME ENTRY DTOs
// ========================================

type ClockInRequest struct {
	// ClockIn overrides the observed time; empty means "now". Admin-entered
	// backfills use it.
	ClockIn   string   `json:"clock_in,omitempty"`
	Date      string   `json:"date,omitempty"` // YYYY-MM-DD, empty means today
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockIn != "" && !validator.IsValidClockTime(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be in HH:MM format",
		})
	}

	if r.Date != "" {
		if _, valid := validator.IsValidDate(r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	ClockOut  string   `json:"clock_out,omitempty"` // empty means "now"
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockOut != "" && !validator.IsValidClockTime(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be in HH:MM format",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakRequest struct {
	Type string `json:"type,omitempty"`
}

func (r *BreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != "" && !validator.IsInSlice(r.Type, BreakTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: lunch, rest, personal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTimeEntryRequest struct {
	ID       string  `json:"-"`
	ClockIn  *string `json:"clock_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`
	Date     *string `json:"date,omitempty"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockIn != nil && !validator.IsValidClockTime(*r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be in HH:MM format",
		})
	}

	if r.ClockOut != nil && !validator.IsValidClockTime(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be in HH:MM format",
		})
	}

	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeEntryFilter struct {
	EmployeeID       *string `json:"employee_id,omitempty"`
	Date             *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate        *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate          *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status           *string `json:"status,omitempty"`
	AttendanceStatus *string `json:"attendance_status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *TimeEntryFilter) Validate() error {
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
			Message: "status must be one of: clocked_in, on_break, clocked_out",
		})
	}

	if f.AttendanceStatus != nil && !validator.IsInSlice(*f.AttendanceStatus, AttendanceStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_status",
			Message: "attendance_status is not a recognized classification",
		})
	}

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyTimeEntryFilter struct {
	Date      *string `json:"date,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Status    *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *MyTimeEntryFilter) Validate() error {
	full := TimeEntryFilter{
		Date:      f.Date,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Status:    f.Status,
		Page:      f.Page,
		Limit:     f.Limit,
	}
	if err := full.Validate(); err != nil {
		return err
	}
	f.Page = full.Page
	f.Limit = full.Limit
	return nil
}

type BreakResponse struct {
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time,omitempty"`
	Duration  int     `json:"duration"`
	Type      string  `json:"type"`
}

type TimeEntryResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	Date             string          `json:"date"`
	ClockIn          string          `json:"clock_in"`
	ClockOut         *string         `json:"clock_out,omitempty"`
	Breaks           []BreakResponse `json:"breaks"`
	HoursWorked      *float64        `json:"hours_worked,omitempty"`
	Status           string          `json:"status"`
	ShiftID          *string         `json:"shift_id,omitempty"`
	AttendanceStatus string          `json:"attendance_status"`
	Message          string          `json:"message,omitempty"`
	ScheduledHours   float64         `json:"scheduled_hours"`
	Variance         *float64        `json:"variance,omitempty"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

type ListTimeEntryResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Entries    []TimeEntryResponse `json:"entries"`
}
