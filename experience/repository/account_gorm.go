package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tharun634/JavaBot/experience/domain"
)

// --- Persistence Model ---

type accountModel struct {
	UserID     uint64  `gorm:"primaryKey;autoIncrement:false"`
	Experience float64 `gorm:"not null;default:0"`
}

func (accountModel) TableName() string {
	return "help_account"
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

// GetOrCreate returns the user's help account, atomically inserting the
// canonical zero-valued record if none exists yet.
func (r *AccountGormRepository) GetOrCreate(ctx context.Context, userID uint64) (*domain.Account, error) {
	m := accountModel{UserID: userID}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &domain.Account{UserID: m.UserID, Experience: m.Experience}, nil
}

// AddExperience grants experience to the user, creating the account if
// needed, and returns the new total.
func (r *AccountGormRepository) AddExperience(ctx context.Context, userID uint64, amount float64) (float64, error) {
	m := accountModel{UserID: userID, Experience: amount}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"experience": gorm.Expr("experience + ?", amount)}),
	}).Create(&m).Error
	if err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return 0, err
	}
	return m.Experience, nil
}

// GetTopAccounts returns one leaderboard page ordered by experience
// descending, user id as tiebreaker. Ranks come from this ordering; pages
// past the end come back empty.
func (r *AccountGormRepository) GetTopAccounts(ctx context.Context, amount, page int) ([]domain.RankedAccount, error) {
	offset := (page - 1) * amount
	if offset < 0 {
		offset = 0
	}

	var models []accountModel
	err := r.db.WithContext(ctx).
		Where("experience > 0").
		Order("experience DESC, user_id ASC").
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
			Account: domain.Account{UserID: m.UserID, Experience: m.Experience},
		}
	}
	return ranked, nil
}
