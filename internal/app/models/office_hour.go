package models

import (
	"time"

	"github.com/google/uuid"
)

// OfficeHour is a weekly slot during which a faculty member is available
type OfficeHour struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FacultyID   uuid.UUID `json:"facultyId" db:"faculty_id"`
	DayOfWeek   string    `json:"dayOfWeek" db:"day_of_week" example:"Monday"`
	StartTime   string    `json:"startTime" db:"start_time" example:"09:00"`
	EndTime     string    `json:"endTime" db:"end_time" example:"11:00"`
	Location    *string   `json:"location,omitempty" db:"location"`
	IsOnline    bool      `json:"isOnline" db:"is_online"`
	MeetingLink *string   `json:"meetingLink,omitempty" db:"meeting_link"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
