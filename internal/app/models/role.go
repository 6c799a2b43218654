package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is a row of the 'roles' table
type Role struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      RoleName  `json:"name" db:"name" example:"faculty"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// UserRole attaches a role to a user, optionally scoped to a department
type UserRole struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       uuid.UUID  `json:"userId" db:"user_id"`
	RoleID       uuid.UUID  `json:"roleId" db:"role_id"`
	RoleName     RoleName   `json:"role"`                          // Joined from roles
	DepartmentID *uuid.UUID `json:"departmentId,omitempty" db:"department_id"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// UserRoleAssignment is a user_roles row joined with user and department names for listings
type UserRoleAssignment struct {
	UserRole
	Email          string  `json:"email"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	DepartmentName *string `json:"departmentName,omitempty"`
}
