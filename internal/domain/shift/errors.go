package shift

import (
	"errors"
	"fmt"
	"strings"
)

// Shift domain errors
var (
	ErrShiftNotFound        = errors.New("shift assignment not found")
	ErrSwapRequestNotFound  = errors.New("shift has no swap request")
	ErrSwapAlreadyResolved  = errors.New("swap request has already been approved or rejected")
	ErrSwapAlreadyPending   = errors.New("shift already has a pending swap request")
	ErrShiftNotReassignable = errors.New("shift can no longer be reassigned")
)

// ConflictError reports the existing assignments that overlap a candidate
// time range. The full list is carried so callers can tell the requester
// exactly which shifts conflict.
type ConflictError struct {
	Conflicts []ShiftAssignment
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s (%s-%s)", c.ID, c.StartTime, c.EndTime))
	}
	return "shift overlaps existing assignment(s): " + strings.Join(parts, ", ")
}
