package events

import "time"

// Event is one row in the append-only analytics log.
type Event struct {
	ID        int64
	EventType string
	Endpoint  string
	UserID    string
	SessionID string
	Details   []byte // JSON
	CreatedAt time.Time
}
