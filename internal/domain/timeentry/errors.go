package timeentry

import "errors"

// Time entry domain errors
var (
	// Clock event errors
	ErrActiveEntryExists = errors.New("employee already has an active time entry")
	ErrNoActiveEntry     = errors.New("employee has no active time entry")
	ErrAlreadyOnBreak    = errors.New("employee is already on break")
	ErrNotOnBreak        = errors.New("employee is not on break")
	ErrStillOnBreak      = errors.New("cannot clock out while on break")

	// General errors
	ErrEntryNotFound = errors.New("time entry not found")
)
