package domain

import (
	"context"
	"time"
)

type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Warn is a single moderation warning issued against a user.
type Warn struct {
	ID        string    `json:"id"`
	UserID    uint64    `json:"userId"`
	WarnedBy  uint64    `json:"warnedBy"`
	Severity  Severity  `json:"severity"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository gives access to the moderation warning history.
type Repository interface {
	Insert(ctx context.Context, warn *Warn) error
	// ListByUserSince returns the user's warnings issued at or after the
	// cutoff, newest first. Older warnings are considered timed out.
	ListByUserSince(ctx context.Context, userID uint64, cutoff time.Time) ([]Warn, error)
}
