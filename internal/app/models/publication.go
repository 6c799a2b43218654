package models

import (
	"time"

	"github.com/google/uuid"
)

// Publication is a research output authored by a faculty member
type Publication struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	FacultyID       uuid.UUID  `json:"facultyId" db:"faculty_id"`
	Title           string     `json:"title" db:"title"`
	Authors         []string   `json:"authors" db:"authors"`
	Journal         *string    `json:"journal,omitempty" db:"journal"`
	DOI             *string    `json:"doi,omitempty" db:"doi"`
	Abstract        *string    `json:"abstract,omitempty" db:"abstract"`
	Keywords        []string   `json:"keywords,omitempty" db:"keywords"`
	PublicationDate *time.Time `json:"publicationDate,omitempty" db:"publication_date"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}
