package dto

import "github.com/google/uuid"

// AssignRoleRequest sets the single role of a user. DepartmentID is required for hod.
type AssignRoleRequest struct {
	Role         string     `json:"role" binding:"required" example:"hod"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
}
