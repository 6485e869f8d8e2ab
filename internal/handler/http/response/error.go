package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/employee"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/leave"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/shift"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/timeentry"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/timeutil"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var formatErr *timeutil.FormatError
	if errors.As(err, &formatErr) {
		BadRequest(w, formatErr.Error(), nil)
		return
	}

	// Shift conflicts carry the full overlapping list so the caller can show
	// exactly which assignments collide.
	var conflictErr *shift.ConflictError
	if errors.As(err, &conflictErr) {
		details := make(map[string]string, len(conflictErr.Conflicts))
		for _, c := range conflictErr.Conflicts {
			details[c.ID] = fmt.Sprintf("%s %s-%s", c.Date.Format("2006-01-02"), c.StartTime, c.EndTime)
		}
		writeJSON(w, http.StatusConflict, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "SHIFT_CONFLICT",
				Message: "Shift overlaps existing assignment(s)",
				Details: details,
			},
		})
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrSwapRequestNotFound):
		NotFound(w, "Shift has no swap request")
	case errors.Is(err, shift.ErrSwapAlreadyResolved):
		Conflict(w, "Swap request already resolved")
	case errors.Is(err, shift.ErrSwapAlreadyPending):
		Conflict(w, "Shift already has a pending swap request")
	case errors.Is(err, shift.ErrShiftNotReassignable):
		Conflict(w, "Shift can no longer be reassigned")

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrActiveEntryExists):
		Conflict(w, "Employee already has an active time entry")
	case errors.Is(err, timeentry.ErrNoActiveEntry):
		Conflict(w, "No active time entry")
	case errors.Is(err, timeentry.ErrAlreadyOnBreak):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, timeentry.ErrNotOnBreak):
		Conflict(w, "No break in progress")
	case errors.Is(err, timeentry.ErrStillOnBreak):
		Conflict(w, "End the open break before clocking out")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrLeaveAlreadyResolved):
		Conflict(w, "Leave record already resolved")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
