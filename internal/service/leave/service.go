package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/employee"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/leave"
)

const dateLayout = "2006-01-02"

type leaveServiceImpl struct {
	leaveRepo    leave.LeaveRecordRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRecordRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &leaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateLeave implements leave.LeaveService.
func (s *leaveServiceImpl) CreateLeave(ctx context.Context, req *leave.CreateLeaveRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start_date: %w", err)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end_date: %w", err)
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRecord{
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	})
	if err != nil {
		return nil, err
	}

	return toLeaveResponse(created), nil
}

// GetLeave implements leave.LeaveService.
func (s *leaveServiceImpl) GetLeave(ctx context.Context, id string) (*leave.LeaveResponse, error) {
	record, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLeaveResponse(record), nil
}

// ListLeaves implements leave.LeaveService.
func (s *leaveServiceImpl) ListLeaves(ctx context.Context, filter *leave.LeaveFilter) (*leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, total, err := s.leaveRepo.List(ctx, *filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, *toLeaveResponse(record))
	}

	return &leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Leaves:     responses,
	}, nil
}

// ApproveLeave implements leave.LeaveService.
func (s *leaveServiceImpl) ApproveLeave(ctx context.Context, req *leave.ResolveLeaveRequest, resolverID string) (*leave.LeaveResponse, error) {
	return s.resolve(ctx, req.ID, resolverID, leave.StatusApproved)
}

// RejectLeave implements leave.LeaveService.
func (s *leaveServiceImpl) RejectLeave(ctx context.Context, req *leave.ResolveLeaveRequest, resolverID string) (*leave.LeaveResponse, error) {
	return s.resolve(ctx, req.ID, resolverID, leave.StatusRejected)
}

func (s *leaveServiceImpl) resolve(ctx context.Context, id, resolverID string, status leave.Status) (*leave.LeaveResponse, error) {
	if resolverID == "" {
		claimed, err := resolverFromContext(ctx)
		if err != nil {
			return nil, err
		}
		resolverID = claimed
	}
	record, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Status != leave.StatusPending {
		return nil, leave.ErrLeaveAlreadyResolved
	}

	record.Status = status
	record.ResolvedBy = &resolverID

	if err := s.leaveRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return toLeaveResponse(record), nil
}

func resolverFromContext(ctx context.Context) (string, error) {
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

func toLeaveResponse(record leave.LeaveRecord) *leave.LeaveResponse {
	return &leave.LeaveResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Type:         string(record.Type),
		StartDate:    record.StartDate.Format(dateLayout),
		EndDate:      record.EndDate.Format(dateLayout),
		Status:       string(record.Status),
		Reason:       record.Reason,
		CreatedAt:    record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    record.UpdatedAt.Format(time.RFC3339),
	}
}
