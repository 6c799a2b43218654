package dto

// CreateOfficeHourRequest represents an office hour slot
type CreateOfficeHourRequest struct {
	DayOfWeek   string  `json:"dayOfWeek" binding:"required,weekday" example:"Monday"`
	StartTime   string  `json:"startTime" binding:"required,timeofday" example:"09:00"`
	EndTime     string  `json:"endTime" binding:"required,timeofday" example:"11:00"`
	Location    *string `json:"location,omitempty" binding:"omitempty,max=100"`
	IsOnline    bool    `json:"isOnline"`
	MeetingLink *string `json:"meetingLink,omitempty" binding:"omitempty,url"`
}

// CreatePublicationRequest represents a publication entry
type CreatePublicationRequest struct {
	Title           string   `json:"title" binding:"required,min=2,max=500"`
	Authors         []string `json:"authors" binding:"required,min=1,dive,required"`
	Journal         *string  `json:"journal,omitempty" binding:"omitempty,max=300"`
	DOI             *string  `json:"doi,omitempty" binding:"omitempty,max=100"`
	Abstract        *string  `json:"abstract,omitempty"`
	Keywords        []string `json:"keywords,omitempty" binding:"omitempty,dive,required"`
	PublicationDate string   `json:"publicationDate,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2024-03-01"`
}
