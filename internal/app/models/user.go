package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated identity stored in the 'users' table
type User struct {
	ID           uuid.UUID  `json:"id" db:"id" example:"6f1c2b9e-3f4a-4e47-9d55-0c5d7f2f7a10"`
	Email        string     `json:"email" db:"email" example:"jane.doe@facultech.com"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"firstName" db:"first_name" example:"Jane"`
	LastName     string     `json:"lastName" db:"last_name" example:"Doe"`
	LastSignInAt *time.Time `json:"lastSignInAt,omitempty" db:"last_sign_in_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName joins first and last name
func (u *User) FullName() string {
	return joinName(u.FirstName, u.LastName)
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
