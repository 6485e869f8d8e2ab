package employee

import "time"

type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleManager),
	string(RoleEmployee),
}
