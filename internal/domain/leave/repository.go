package leave

import (
	"context"
	"time"
)

// LeaveRecordRepository defines data access for leave records.
type LeaveRecordRepository interface {
	Create(ctx context.Context, record LeaveRecord) (LeaveRecord, error)

	// GetByID returns ErrLeaveNotFound when no record matches.
	GetByID(ctx context.Context, id string) (LeaveRecord, error)

	// FindApprovedLeave returns the approved record covering the date for
	// the employee, or nil when there is none.
	FindApprovedLeave(ctx context.Context, employeeID string, date time.Time) (*LeaveRecord, error)

	List(ctx context.Context, filter LeaveFilter) ([]LeaveRecord, int64, error)

	Update(ctx context.Context, record LeaveRecord) error
}
