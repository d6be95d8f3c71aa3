package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tharun634/JavaBot/qotw/domain"
)

// --- Persistence Model ---

type accountModel struct {
	UserID uint64 `gorm:"primaryKey;autoIncrement:false"`
	Points int64  `gorm:"not null;default:0"`
}

func (accountModel) TableName() string {
	return "qotw_points"
}

// --- Repository Implementation ---

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&accountModel{})
}

// GetOrCreate returns the user's account, inserting the canonical
// zero-valued record if none exists yet. The insert is an atomic upsert:
// concurrent first-time calls converge on one row.
func (r *AccountGormRepository) GetOrCreate(ctx context.Context, userID uint64) (*domain.Account, error) {
	m := accountModel{UserID: userID}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		return nil, err
	}
	// On conflict the insert was skipped; read back whichever row won.
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &domain.Account{UserID: m.UserID, Points: m.Points}, nil
}

// Increment adds one point to the user's account, creating it at one point
// if it does not exist, and returns the new total.
func (r *AccountGormRepository) Increment(ctx context.Context, userID uint64) (int64, error) {
	m := accountModel{UserID: userID, Points: 1}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"points": gorm.Expr("points + 1")}),
	}).Create(&m).Error
	if err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return 0, err
	}
	return m.Points, nil
}

// GetTopAccounts returns one leaderboard page, ordered by points descending
// with the user id as tiebreaker so pagination is stable. Ranks are assigned
// from this ordering. Pages past the end come back empty.
func (r *AccountGormRepository) GetTopAccounts(ctx context.Context, amount, page int) ([]domain.RankedAccount, error) {
	offset := (page - 1) * amount
	if offset < 0 {
		offset = 0
	}

	var models []accountModel
	err := r.db.WithContext(ctx).
		Where("points > 0").
		Order("points DESC, user_id ASC").
		Limit(amount).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.RankedAccount, len(models))
	for i, m := range models {
		ranked[i] = domain.RankedAccount{
			Rank:    offset + i + 1,
			Account: domain.Account{UserID: m.UserID, Points: m.Points},
		}
	}
	return ranked, nil
}
