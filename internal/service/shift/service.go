package shift

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/employee"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/shift"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/database"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/timeutil"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/repository/postgresql"
)

const dateLayout = "2006-01-02"

type shiftServiceImpl struct {
	shiftRepo    shift.ShiftAssignmentRepository
	employeeRepo employee.EmployeeRepository
	runTx        func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
) shift.ShiftService {
	return &shiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		runTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// findConflicts returns the active assignments whose time range overlaps the
// candidate on the given day. excludeID skips the assignment being edited so
// it never conflicts with itself.
func (s *shiftServiceImpl) findConflicts(ctx context.Context, employeeID string, date time.Time, startTime, endTime, excludeID string) ([]shift.ShiftAssignment, error) {
	existing, err := s.shiftRepo.GetActiveByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}

	var conflicts []shift.ShiftAssignment
	for _, assignment := range existing {
		if excludeID != "" && assignment.ID == excludeID {
			continue
		}
		overlaps, err := timeutil.Overlaps(startTime, endTime, assignment.StartTime, assignment.EndTime)
		if err != nil {
			return nil, fmt.Errorf("failed to compare shift intervals: %w", err)
		}
		if overlaps {
			conflicts = append(conflicts, assignment)
		}
	}

	return conflicts, nil
}

// guardConflicts wraps findConflicts into the write-path contract: any
// overlap aborts the write with a ConflictError naming every overlapping
// assignment.
func (s *shiftServiceImpl) guardConflicts(ctx context.Context, employeeID string, date time.Time, startTime, endTime, excludeID string) error {
	conflicts, err := s.findConflicts(ctx, employeeID, date, startTime, endTime, excludeID)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &shift.ConflictError{Conflicts: conflicts}
	}
	return nil
}

// CreateAssignment implements shift.ShiftService.
func (s *shiftServiceImpl) CreateAssignment(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	assignedBy, err := employeeIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.ShiftResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	assignment := newAssignment(req, date, assignedBy)

	err = s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.guardConflicts(txCtx, req.EmployeeID, date, req.StartTime, req.EndTime, ""); err != nil {
			return err
		}
		created, err := s.shiftRepo.Create(txCtx, assignment)
		if err != nil {
			return err
		}
		assignment = created
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(assignment), nil
}

// BulkCreateAssignments implements shift.ShiftService. The batch is atomic:
// a conflict against stored assignments or between two items in the batch
// rejects everything.
func (s *shiftServiceImpl) BulkCreateAssignments(ctx context.Context, req shift.BulkCreateShiftRequest) ([]shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	assignedBy, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	type parsedItem struct {
		req  shift.CreateShiftRequest
		date time.Time
	}
	items := make([]parsedItem, 0, len(req.Shifts))
	for _, item := range req.Shifts {
		date, err := time.Parse(dateLayout, item.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		items = append(items, parsedItem{req: item, date: date})
	}

	var responses []shift.ShiftResponse
	err = s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		responses = responses[:0]
		for _, item := range items {
			if _, err := s.employeeRepo.GetByID(txCtx, item.req.EmployeeID); err != nil {
				return err
			}
			// Earlier items in the batch are already inserted, so one
			// conflict guard covers both stored and in-batch overlap.
			if err := s.guardConflicts(txCtx, item.req.EmployeeID, item.date, item.req.StartTime, item.req.EndTime, ""); err != nil {
				return err
			}
			created, err := s.shiftRepo.Create(txCtx, newAssignment(item.req, item.date, assignedBy))
			if err != nil {
				return err
			}
			responses = append(responses, toShiftResponse(created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// GetAssignment implements shift.ShiftService.
func (s *shiftServiceImpl) GetAssignment(ctx context.Context, id string) (shift.ShiftResponse, error) {
	assignment, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toShiftResponse(assignment), nil
}

// ListAssignments implements shift.ShiftService.
func (s *shiftServiceImpl) ListAssignments(ctx context.Context, filter shift.ShiftFilter) (shift.ListShiftResponse, error) {
	if err := filter.Validate(); err != nil {
		return shift.ListShiftResponse{}, err
	}

	assignments, total, err := s.shiftRepo.List(ctx, filter)
	if err != nil {
		return shift.ListShiftResponse{}, err
	}

	responses := make([]shift.ShiftResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, toShiftResponse(assignment))
	}

	return shift.ListShiftResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Shifts:     responses,
	}, nil
}

// UpdateAssignment implements shift.ShiftService.
func (s *shiftServiceImpl) UpdateAssignment(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	assignment, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	rangeChanged := false
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return shift.ShiftResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		if !date.Equal(assignment.Date) {
			assignment.Date = date
			rangeChanged = true
		}
	}
	if req.StartTime != nil && *req.StartTime != assignment.StartTime {
		assignment.StartTime = *req.StartTime
		rangeChanged = true
	}
	if req.EndTime != nil && *req.EndTime != assignment.EndTime {
		assignment.EndTime = *req.EndTime
		rangeChanged = true
	}
	if req.Location != nil {
		assignment.Location = shift.Location(*req.Location)
	}
	if req.WorkType != nil {
		assignment.WorkType = shift.WorkType(*req.WorkType)
	}
	if req.BreakDuration != nil {
		assignment.BreakDuration = *req.BreakDuration
	}
	if req.Status != nil {
		assignment.Status = shift.Status(*req.Status)
	}
	if req.Notes != nil {
		assignment.Notes = req.Notes
	}

	err = s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if rangeChanged && assignment.Status.Active() {
			if err := s.guardConflicts(txCtx, assignment.EmployeeID, assignment.Date, assignment.StartTime, assignment.EndTime, assignment.ID); err != nil {
				return err
			}
		}
		return s.shiftRepo.Update(txCtx, assignment)
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(assignment), nil
}

// DeleteAssignment implements shift.ShiftService.
func (s *shiftServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

// DetectConflicts implements shift.ShiftService.
func (s *shiftServiceImpl) DetectConflicts(ctx context.Context, req shift.ConflictCheckRequest) ([]shift.ShiftAssignment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	return s.findConflicts(ctx, req.EmployeeID, date, req.StartTime, req.EndTime, req.ExcludeAssignmentID)
}

// RequestSwap implements shift.ShiftService.
func (s *shiftServiceImpl) RequestSwap(ctx context.Context, req shift.SwapShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	requestedBy, err := employeeIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.RequestedWith); err != nil {
		return shift.ShiftResponse{}, err
	}

	assignment, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if assignment.Status != shift.StatusScheduled {
		return shift.ShiftResponse{}, shift.ErrShiftNotReassignable
	}
	if assignment.SwapRequest != nil && assignment.SwapRequest.Status == shift.SwapStatusPending {
		return shift.ShiftResponse{}, shift.ErrSwapAlreadyPending
	}

	assignment.SwapRequest = &shift.SwapRequest{
		RequestedBy:   requestedBy,
		RequestedWith: req.RequestedWith,
		Status:        shift.SwapStatusPending,
		Reason:        req.Reason,
		RequestedAt:   time.Now(),
	}

	if err := s.shiftRepo.Update(ctx, assignment); err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(assignment), nil
}

// ApproveSwap implements shift.ShiftService. The original assignment is
// retired as Swapped and a conflict-checked replacement is created for the
// requested employee with the same date and times.
func (s *shiftServiceImpl) ApproveSwap(ctx context.Context, req shift.ResolveSwapRequest) (shift.ShiftResponse, error) {
	approvedBy, err := employeeIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	assignment, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if assignment.SwapRequest == nil {
		return shift.ShiftResponse{}, shift.ErrSwapRequestNotFound
	}
	if assignment.SwapRequest.Status != shift.SwapStatusPending {
		return shift.ShiftResponse{}, shift.ErrSwapAlreadyResolved
	}

	var replacement shift.ShiftAssignment
	err = s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Re-read inside the transaction: the shift may have been clocked
		// into (or otherwise left Scheduled) since the request was made, and
		// a worked shift cannot be retired as Swapped.
		assignment, err = s.shiftRepo.GetByID(txCtx, req.ShiftID)
		if err != nil {
			return err
		}
		if assignment.Status != shift.StatusScheduled {
			return shift.ErrShiftNotReassignable
		}
		if assignment.SwapRequest == nil || assignment.SwapRequest.Status != shift.SwapStatusPending {
			return shift.ErrSwapAlreadyResolved
		}

		newOwner := assignment.SwapRequest.RequestedWith
		if err := s.guardConflicts(txCtx, newOwner, assignment.Date, assignment.StartTime, assignment.EndTime, assignment.ID); err != nil {
			return err
		}

		now := time.Now()
		assignment.Status = shift.StatusSwapped
		assignment.SwapRequest.Status = shift.SwapStatusApproved
		assignment.SwapRequest.ResolvedAt = &now
		if err := s.shiftRepo.Update(txCtx, assignment); err != nil {
			return err
		}

		created, err := s.shiftRepo.Create(txCtx, shift.ShiftAssignment{
			EmployeeID:    newOwner,
			Date:          assignment.Date,
			StartTime:     assignment.StartTime,
			EndTime:       assignment.EndTime,
			Location:      assignment.Location,
			WorkType:      assignment.WorkType,
			BreakDuration: assignment.BreakDuration,
			Status:        shift.StatusScheduled,
			AssignedBy:    approvedBy,
			Notes:         assignment.Notes,
		})
		if err != nil {
			return err
		}
		replacement = created
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(replacement), nil
}

// RejectSwap implements shift.ShiftService.
func (s *shiftServiceImpl) RejectSwap(ctx context.Context, req shift.ResolveSwapRequest) (shift.ShiftResponse, error) {
	assignment, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if assignment.SwapRequest == nil {
		return shift.ShiftResponse{}, shift.ErrSwapRequestNotFound
	}
	if assignment.SwapRequest.Status != shift.SwapStatusPending {
		return shift.ShiftResponse{}, shift.ErrSwapAlreadyResolved
	}

	now := time.Now()
	assignment.SwapRequest.Status = shift.SwapStatusRejected
	assignment.SwapRequest.ResolvedAt = &now

	if err := s.shiftRepo.Update(ctx, assignment); err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(assignment), nil
}

func newAssignment(req shift.CreateShiftRequest, date time.Time, assignedBy string) shift.ShiftAssignment {
	location := shift.Location(req.Location)
	if req.Location == "" {
		location = shift.LocationOffice
	}
	workType := shift.WorkType(req.WorkType)
	if req.WorkType == "" {
		workType = shift.WorkTypeRegular
	}
	return shift.ShiftAssignment{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      location,
		WorkType:      workType,
		BreakDuration: req.BreakDuration,
		Status:        shift.StatusScheduled,
		AssignedBy:    assignedBy,
		Notes:         req.Notes,
	}
}

func toShiftResponse(assignment shift.ShiftAssignment) shift.ShiftResponse {
	resp := shift.ShiftResponse{
		ID:              assignment.ID,
		EmployeeID:      assignment.EmployeeID,
		EmployeeName:    assignment.EmployeeName,
		Date:            assignment.Date.Format(dateLayout),
		StartTime:       assignment.StartTime,
		EndTime:         assignment.EndTime,
		Location:        string(assignment.Location),
		WorkType:        string(assignment.WorkType),
		BreakDuration:   assignment.BreakDuration,
		ScheduledHours:  shift.ScheduledHours(assignment),
		Status:          string(assignment.Status),
		AssignedBy:      assignment.AssignedBy,
		Notes:           assignment.Notes,
		ActualStartTime: assignment.ActualStartTime,
		ActualEndTime:   assignment.ActualEndTime,
		TimeEntryID:     assignment.TimeEntryID,
		CreatedAt:       assignment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       assignment.UpdatedAt.Format(time.RFC3339),
	}
	if assignment.SwapRequest != nil {
		swap := &shift.SwapRequestResponse{
			RequestedBy:   assignment.SwapRequest.RequestedBy,
			RequestedWith: assignment.SwapRequest.RequestedWith,
			Status:        string(assignment.SwapRequest.Status),
			Reason:        assignment.SwapRequest.Reason,
			RequestedAt:   assignment.SwapRequest.RequestedAt.Format(time.RFC3339),
		}
		if assignment.SwapRequest.ResolvedAt != nil {
			resolved := assignment.SwapRequest.ResolvedAt.Format(time.RFC3339)
			swap.ResolvedAt = &resolved
		}
		resp.SwapRequest = swap
	}
	return resp
}
