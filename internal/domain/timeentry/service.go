package timeentry

import "context"

// TimeEntryService defines business logic for clock events. Each clock event
// writes the time entry first (the source of truth for the employee-facing
// action) and then synchronizes the linked shift's status best-effort.
type TimeEntryService interface {
	// ClockIn matches today's shift, classifies attendance, creates the
	// entry and flips the shift to In Progress
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)

	// ClockOut closes the active entry, computes worked hours and variance,
	// and completes the linked shift
	ClockOut(ctx context.Context, req ClockOutRequest) (TimeEntryResponse, error)

	// StartBreak opens a break on the active entry and puts the linked
	// shift On Break
	StartBreak(ctx context.Context, req BreakRequest) (TimeEntryResponse, error)

	// EndBreak closes the open break and resumes the linked shift
	EndBreak(ctx context.Context) (TimeEntryResponse, error)

	// GetMyEntries retrieves entries for the authenticated employee
	GetMyEntries(ctx context.Context, filter MyTimeEntryFilter) (ListTimeEntryResponse, error)

	// ListEntries retrieves entries with filters (admin/manager)
	ListEntries(ctx context.Context, filter TimeEntryFilter) (ListTimeEntryResponse, error)

	// GetEntry retrieves a single entry by ID
	GetEntry(ctx context.Context, id string) (TimeEntryResponse, error)

	// UpdateEntry fixes an entry's recorded times (admin/manager) and
	// recomputes derived hours
	UpdateEntry(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)

	// DeleteEntry removes an entry and reverts its linked shift to
	// Scheduled
	DeleteEntry(ctx context.Context, id string) error
}
