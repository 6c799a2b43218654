package dto

import (
	"github.com/google/uuid"
	"github.com/yigit/facultyhub/internal/app/models"
)

// CreateFacultyMemberRequest adds a faculty member to the department in the path.
// Password is required when CreateAccount is set.
type CreateFacultyMemberRequest struct {
	FirstName       string  `json:"firstName" binding:"required,min=2,max=100" example:"Ada"`
	LastName        string  `json:"lastName" binding:"required,min=2,max=100" example:"Lovelace"`
	Title           string  `json:"title" binding:"required,min=2,max=100" example:"Associate Professor"`
	Email           string  `json:"email" binding:"required,email" example:"ada@facultech.com"`
	Phone           *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	OfficeLocation  *string `json:"officeLocation,omitempty" binding:"omitempty,max=100"`
	Bio             *string `json:"bio,omitempty" binding:"omitempty,max=2000"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty" binding:"omitempty,url"`
	CreateAccount   bool    `json:"createAccount"`
	Password        string  `json:"password,omitempty" binding:"omitempty,min=6"`
}

// UpdateFacultyMemberRequest replaces a faculty member's profile. DepartmentID moves the member
// and is honoured for administrators only.
type UpdateFacultyMemberRequest struct {
	FirstName       string     `json:"firstName" binding:"required,min=2,max=100"`
	LastName        string     `json:"lastName" binding:"required,min=2,max=100"`
	Title           string     `json:"title" binding:"required,min=2,max=100"`
	Email           string     `json:"email" binding:"required,email"`
	Phone           *string    `json:"phone,omitempty" binding:"omitempty,max=30"`
	OfficeLocation  *string    `json:"officeLocation,omitempty" binding:"omitempty,max=100"`
	Bio             *string    `json:"bio,omitempty" binding:"omitempty,max=2000"`
	ProfileImageURL *string    `json:"profileImageUrl,omitempty" binding:"omitempty,url"`
	DepartmentID    *uuid.UUID `json:"departmentId,omitempty"`
}

// CreateFacultyMemberResponse is the created record and whether a login was created with it
type CreateFacultyMemberResponse struct {
	FacultyMember  *models.FacultyMember `json:"facultyMember"`
	AccountCreated bool                  `json:"accountCreated"`
}
