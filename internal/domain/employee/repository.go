package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) error
	SoftDelete(ctx context.Context, id string) error
}
