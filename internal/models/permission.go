package models

import "time"

// PermissionRequest is a user's free-text request for report or arrival
// access. There is no approve/deny workflow; requests are records only.
type PermissionRequest struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	Username         string    `json:"username,omitempty"` // joined field
	Message          string    `json:"message"`
	RequestedReport  bool      `json:"requested_report"`
	RequestedArrival bool      `json:"requested_arrival"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	ModifiedAt       time.Time `json:"modified_at"`
}

// CreatePermissionRequest represents the request body for filing a
// permission request
type CreatePermissionRequest struct {
	Message          string `json:"message" validate:"required"`
	RequestedReport  bool   `json:"requested_report"`
	RequestedArrival bool   `json:"requested_arrival"`
}
