package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tharun634/JavaBot/preferences/domain"
)

// --- Persistence Model ---

type preferenceModel struct {
	UserID     uint64 `gorm:"primaryKey;autoIncrement:false"`
	Preference string `gorm:"primaryKey"`
	Enabled    bool   `gorm:"not null;default:false"`
}

func (preferenceModel) TableName() string {
	return "user_preferences"
}

// --- Repository Implementation ---

type PreferenceGormRepository struct {
	db *gorm.DB
}

func NewPreferenceGormRepository(db *gorm.DB) *PreferenceGormRepository {
	return &PreferenceGormRepository{db: db}
}

func (r *PreferenceGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&preferenceModel{})
}

// GetOrCreate returns the user's preference of the given kind, atomically
// inserting the disabled default if none exists yet.
func (r *PreferenceGormRepository) GetOrCreate(ctx context.Context, userID uint64, kind domain.Kind) (*domain.UserPreference, error) {
	m := preferenceModel{UserID: userID, Preference: string(kind)}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&m, "user_id = ? AND preference = ?", userID, string(kind)).Error; err != nil {
		return nil, err
	}
	return &domain.UserPreference{UserID: m.UserID, Kind: domain.Kind(m.Preference), Enabled: m.Enabled}, nil
}

// Set upserts the preference state for the given user and kind.
func (r *PreferenceGormRepository) Set(ctx context.Context, userID uint64, kind domain.Kind, enabled bool) error {
	m := preferenceModel{UserID: userID, Preference: string(kind), Enabled: enabled}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "preference"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"enabled": enabled}),
	}).Create(&m).Error
}
