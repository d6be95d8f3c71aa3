package domain

import "context"

// Account is a user's Question of the Week point account.
type Account struct {
	UserID uint64 `json:"userId"`
	Points int64  `json:"points"`
}

// RankedAccount is an account as it appears in the points leaderboard.
// Rank is assigned by the repository's ordering and is authoritative;
// consumers must take it verbatim instead of re-deriving it.
type RankedAccount struct {
	Rank int `json:"rank"`
	Account
}

// Repository gives access to QOTW point accounts.
//
// GetOrCreate must be an atomic upsert at the storage boundary: concurrent
// first-time calls for the same user converge on a single zero-valued
// record, never duplicates.
type Repository interface {
	GetOrCreate(ctx context.Context, userID uint64) (*Account, error)
	Increment(ctx context.Context, userID uint64) (int64, error)
	GetTopAccounts(ctx context.Context, amount, page int) ([]RankedAccount, error)
}
