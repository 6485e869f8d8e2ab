package shift

import "context"

// ShiftService defines business logic for shift assignment operations. Every
// write that sets or changes an assignment's time range runs the conflict
// detector first; overlapping writes are rejected wholesale.
type ShiftService interface {
	// CreateAssignment creates a single conflict-checked assignment
	CreateAssignment(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	// BulkCreateAssignments creates several assignments atomically; one
	// conflict anywhere rejects the whole batch
	BulkCreateAssignments(ctx context.Context, req BulkCreateShiftRequest) ([]ShiftResponse, error)

	// GetAssignment retrieves a single assignment by ID
	GetAssignment(ctx context.Context, id string) (ShiftResponse, error)

	// ListAssignments retrieves assignments with filters
	ListAssignments(ctx context.Context, filter ShiftFilter) (ListShiftResponse, error)

	// UpdateAssignment updates an assignment, re-running conflict detection
	// when the time range, date or employee changes
	UpdateAssignment(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)

	// DeleteAssignment removes an assignment
	DeleteAssignment(ctx context.Context, id string) error

	// DetectConflicts returns the active assignments overlapping the
	// candidate range on the given day, excluding excludeID when non-empty.
	// Pure read, no mutation.
	DetectConflicts(ctx context.Context, req ConflictCheckRequest) ([]ShiftAssignment, error)

	// RequestSwap records a pending swap request on a shift
	RequestSwap(ctx context.Context, req SwapShiftRequest) (ShiftResponse, error)

	// ApproveSwap hands the shift to the requested employee: the original is
	// marked Swapped and a conflict-checked replacement is created
	ApproveSwap(ctx context.Context, req ResolveSwapRequest) (ShiftResponse, error)

	// RejectSwap rejects a pending swap request
	RejectSwap(ctx context.Context, req ResolveSwapRequest) (ShiftResponse, error)
}
