package domain

import "context"

// Kind enumerates the user preference kinds the bot knows about. A profile
// always carries one entry per kind.
type Kind string

const (
	KindQOTWReminder Kind = "QOTW_REMINDER"
	KindHelpThanksDM Kind = "HELP_THANKS_DM"
)

// Kinds returns all preference kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindQOTWReminder, KindHelpThanksDM}
}

// UserPreference is a single preference toggle for one user. The canonical
// default record is disabled.
type UserPreference struct {
	UserID  uint64 `json:"userId"`
	Kind    Kind   `json:"preference"`
	Enabled bool   `json:"enabled"`
}

// Repository gives access to user preferences. GetOrCreate is an atomic
// upsert of the default record for the given kind.
type Repository interface {
	GetOrCreate(ctx context.Context, userID uint64, kind Kind) (*UserPreference, error)
	Set(ctx context.Context, userID uint64, kind Kind, enabled bool) error
}
