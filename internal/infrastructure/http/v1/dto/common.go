// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"stockpilot/internal/core/apperror"
)

// --- List Response ---

// ListResponse wraps list results with pagination.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Delete Response ---

// DeleteResponse reports how many records a bulk delete removed.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// --- Date parsing ---

// dateLayouts are the accepted dueDate formats: a bare calendar date or
// a full RFC3339 timestamp (the time-of-day part is dropped downstream).
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ParseDate parses a date string into a time.Time.
func ParseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.NewInvalidInput("invalid date format, expected YYYY-MM-DD", field).
		WithDetail("value", value)
}
