package shift

import (
	"context"
	"time"
)

// ShiftAssignmentRepository defines data access for shift assignments.
type ShiftAssignmentRepository interface {
	// Create creates a new shift assignment
	Create(ctx context.Context, assignment ShiftAssignment) (ShiftAssignment, error)

	// GetByID retrieves an assignment by ID
	GetByID(ctx context.Context, id string) (ShiftAssignment, error)

	// GetActiveByEmployeeAndDate retrieves all non-cancelled, non-swapped
	// assignments for an employee on a calendar day. Used by the shift
	// matcher and the conflict detector.
	GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]ShiftAssignment, error)

	// List retrieves assignments with filters and pagination
	List(ctx context.Context, filter ShiftFilter) ([]ShiftAssignment, int64, error)

	// Update persists all mutable fields of an existing assignment
	Update(ctx context.Context, assignment ShiftAssignment) error

	// Delete removes an assignment
	Delete(ctx context.Context, id string) error

	// MarkMissedBefore flips Scheduled assignments dated strictly before the
	// cutoff with no linked time entry to Missed, returning the count.
	MarkMissedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
