package models

import (
	"time"

	"github.com/google/uuid"
)

// FacultyMember is a teaching staff record, optionally linked to a login account
type FacultyMember struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	FirstName       string     `json:"firstName" db:"first_name" example:"Ada"`
	LastName        string     `json:"lastName" db:"last_name" example:"Lovelace"`
	Title           string     `json:"title" db:"title" example:"Associate Professor"`
	Email           string     `json:"email" db:"email" example:"ada@facultech.com"`
	Phone           *string    `json:"phone,omitempty" db:"phone"`
	OfficeLocation  *string    `json:"officeLocation,omitempty" db:"office_location"`
	Bio             *string    `json:"bio,omitempty" db:"bio"`
	ProfileImageURL *string    `json:"profileImageUrl,omitempty" db:"profile_image_url"`
	DepartmentID    uuid.UUID  `json:"departmentId" db:"department_id"`
	UserID          *uuid.UUID `json:"userId,omitempty" db:"user_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`

	DepartmentName string `json:"departmentName,omitempty"` // Joined, not a column
}

// FullName joins first and last name
func (f *FacultyMember) FullName() string {
	return joinName(f.FirstName, f.LastName)
}
