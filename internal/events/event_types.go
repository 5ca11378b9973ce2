package events

import (
	"time"

	"github.com/petcarex/console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSignedIn       EventType = "session_signed_in"
	EventSignedOut      EventType = "session_signed_out"
	EventSessionRevoked EventType = "session_revoked"
	EventSessionExpired EventType = "session_expired"
)

// SessionLifecycle lists every session lifecycle event type.
var SessionLifecycle = []EventType{
	EventSignedIn,
	EventSignedOut,
	EventSessionRevoked,
	EventSessionExpired,
}

// Actor identifies the principal behind a session event.
type Actor struct {
	Subject    string      `json:"subject"`
	Role       domain.Role `json:"role"`
	BranchCode string      `json:"branch_code,omitempty"`
}

// Event represents a session lifecycle event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}
