package models

import (
	"time"

	"github.com/google/uuid"
)

// Department represents an academic department
type Department struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" example:"Computer Science"`
	Code        string    `json:"code" db:"code" example:"CS"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
