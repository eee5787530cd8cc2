package quotes

import (
	"errors"
	"time"
)

// ErrInvalidTransition is returned when a status change is not
// allowed from the quote's current state.
var ErrInvalidTransition = errors.New("invalid status transition")

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Quote is a persisted estimate. The full Estimate record rides along
// as a JSON payload; Total is denormalized for listings.
type Quote struct {
	ID           int64
	QuoteID      string // opaque public identifier
	LeadID       int64
	CustomerName string
	EstimateJSON []byte
	Total        float64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// validTransitions guards quote status changes; a quote never moves
// backwards out of a terminal state.
var validTransitions = map[Status][]Status{
	StatusDraft: {StatusSent, StatusExpired},
	StatusSent:  {StatusAccepted, StatusRejected, StatusExpired},
}

// CanTransition reports whether a quote may move from to next.
func CanTransition(from, next Status) bool {
	for _, s := range validTransitions[from] {
		if s == next {
			return true
		}
	}
	return false
}
