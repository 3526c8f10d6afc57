package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable audit record. Created once, never mutated or
// deleted.
type Event struct {
	ID            int       `json:"id"`
	CorrelationID uuid.UUID `json:"correlation_id"`
	EventAction   string    `json:"event_action"`
	Description   string    `json:"description"`
	Payload       string    `json:"payload"`
	IPAddress     string    `json:"ip_address"`
	UserID        int       `json:"user_id"`
	Username      string    `json:"username,omitempty"` // joined field
	Status        int16     `json:"status"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
}

// NewEvent constructs an Event with a correlation identifier generated at
// call time. The identifier must be fresh per event, never shared as a
// package-level default.
func NewEvent(action, description, payload, ipAddress string, userID int, status int16) *Event {
	return &Event{
		CorrelationID: uuid.New(),
		EventAction:   action,
		Description:   description,
		Payload:       payload,
		IPAddress:     ipAddress,
		UserID:        userID,
		Status:        status,
	}
}

// EventFilter is the typed filter for audit log queries
type EventFilter struct {
	Action string     `json:"action"`
	UserID int        `json:"user_id"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}
