package models

import (
	"time"

	"github.com/google/uuid"
)

// Course belongs to a department and optionally to the faculty member teaching it
type Course struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Code         string     `json:"code" db:"code" example:"CS101"`
	Name         string     `json:"name" db:"name" example:"Introduction to Programming"`
	Description  *string    `json:"description,omitempty" db:"description"`
	Credits      int        `json:"credits" db:"credits" example:"3"`
	Semester     string     `json:"semester" db:"semester" example:"Fall"`
	Year         int        `json:"year" db:"year" example:"2025"`
	DepartmentID uuid.UUID  `json:"departmentId" db:"department_id"`
	FacultyID    *uuid.UUID `json:"facultyId,omitempty" db:"faculty_id"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`

	// Joined, not columns
	DepartmentName string  `json:"departmentName,omitempty"`
	FacultyName    *string `json:"facultyName,omitempty"`
}

// CourseFilter narrows course listings. Nil fields are ignored.
type CourseFilter struct {
	DepartmentID *uuid.UUID
	FacultyID    *uuid.UUID
}
