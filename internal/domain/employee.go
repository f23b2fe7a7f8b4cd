package domain

type EmployeeRole string

const (
	EmployeeRoleAdmin    EmployeeRole = "ADMIN"
	EmployeeRoleEmployee EmployeeRole = "EMPLOYEE"
)

type Employee struct {
	ID           int32        `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Role         EmployeeRole `json:"role"`
}
