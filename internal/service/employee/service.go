package employee

import (
	"context"
	"math"
	"time"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/employee"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role := employee.Role(req.Role)
	if req.Role == "" {
		role = employee.RoleEmployee
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	})
	if err != nil {
		return nil, err
	}

	return toEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *employeeServiceImpl) ListEmployees(ctx context.Context, filter *employee.EmployeeFilter) (*employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, total, err := s.employeeRepo.List(ctx, *filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, *toEmployeeResponse(emp))
	}

	return &employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return toEmployeeResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.SoftDelete(ctx, id)
}

func toEmployeeResponse(emp employee.Employee) *employee.EmployeeResponse {
	return &employee.EmployeeResponse{
		ID:        emp.ID,
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		Role:      string(emp.Role),
		CreatedAt: emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: emp.UpdatedAt.Format(time.RFC3339),
	}
}
