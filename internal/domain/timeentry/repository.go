package timeentry

import (
	"context"
)

// TimeEntryRepository defines data access for time entries.
type TimeEntryRepository interface {
	// Create creates a new time entry. The storage layer enforces at most
	// one active entry per employee; a violation surfaces as
	// ErrActiveEntryExists.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// GetByID retrieves a time entry by ID
	GetByID(ctx context.Context, id string) (TimeEntry, error)

	// GetActiveByEmployee retrieves the employee's clocked_in/on_break
	// entry, or nil when there is none
	GetActiveByEmployee(ctx context.Context, employeeID string) (*TimeEntry, error)

	// List retrieves time entries with filters and pagination
	List(ctx context.Context, filter TimeEntryFilter) ([]TimeEntry, int64, error)

	// Update persists all mutable fields of an existing entry
	Update(ctx context.Context, entry TimeEntry) error

	// Delete removes a time entry
	Delete(ctx context.Context, id string) error
}
