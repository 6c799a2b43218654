package dto

import (
	"time"

	"github.com/yigit/facultyhub/internal/app/models"
)

// APIResponse is the envelope of every successful response
type APIResponse struct {
	Success      bool                 `json:"success" example:"true"`
	Message      string               `json:"message,omitempty" example:"Operation completed successfully"`
	Data         interface{}          `json:"data,omitempty"`
	Error        *ErrorDetail         `json:"error,omitempty"`
	Notification *models.Notification `json:"notification,omitempty"`
	Timestamp    time.Time            `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse creates a standard success envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// WithNotification attaches a toast to the response
func (r APIResponse) WithNotification(n models.Notification) APIResponse {
	r.Notification = &n
	return r
}

// SuccessResponse represents a bare success message
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginationInfo describes the page returned in a listing
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
