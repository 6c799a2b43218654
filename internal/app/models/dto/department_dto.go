package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100" example:"Computer Science"`
	Code        string  `json:"code" binding:"required,deptcode" example:"CS"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest CreateDepartmentRequest
