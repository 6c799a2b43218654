package dto

import "github.com/google/uuid"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code         string     `json:"code" binding:"required,coursecode" example:"CS101"`
	Name         string     `json:"name" binding:"required,min=2,max=200" example:"Introduction to Programming"`
	Description  *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
	Credits      int        `json:"credits" binding:"min=0,max=30" example:"3"`
	Semester     string     `json:"semester" binding:"required,oneof=Fall Spring Summer" example:"Fall"`
	Year         int        `json:"year" binding:"required,min=2000,max=2100" example:"2025"`
	DepartmentID uuid.UUID  `json:"departmentId" binding:"required"`
	FacultyID    *uuid.UUID `json:"facultyId,omitempty"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest CreateCourseRequest

// AssignFacultyRequest sets the teaching faculty member of a course. A null facultyId unassigns it.
type AssignFacultyRequest struct {
	FacultyID *uuid.UUID `json:"facultyId"`
}
