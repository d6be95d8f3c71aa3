package domain

import "context"

// Account is a user's help experience account. Experience is granted when
// the user's answers in help channels are closed as helpful.
type Account struct {
	UserID     uint64  `json:"userId"`
	Experience float64 `json:"experience"`
}

// RankedAccount is an account as it appears in the experience leaderboard,
// with the rank assigned by the repository's descending-score ordering.
type RankedAccount struct {
	Rank int `json:"rank"`
	Account
}

// Repository gives access to help experience accounts. GetOrCreate is an
// atomic upsert; repeated calls for the same user yield one record.
type Repository interface {
	GetOrCreate(ctx context.Context, userID uint64) (*Account, error)
	AddExperience(ctx context.Context, userID uint64, amount float64) (float64, error)
	GetTopAccounts(ctx context.Context, amount, page int) ([]RankedAccount, error)
}
