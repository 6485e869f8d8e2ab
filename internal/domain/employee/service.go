package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (*EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter *EmployeeFilter) (*ListEmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
}
