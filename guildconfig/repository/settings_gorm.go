package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tharun634/JavaBot/guildconfig/domain"
)

// --- Persistence Model ---

type settingsModel struct {
	GuildID         uint64 `gorm:"primaryKey;autoIncrement:false"`
	WarnTimeoutDays int    `gorm:"not null;default:30"`
}

func (settingsModel) TableName() string {
	return "guild_settings"
}

// --- Repository Implementation ---

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&settingsModel{})
}

// GetOrDefault returns the guild's stored settings, or a default snapshot
// when the guild has none. It never writes; defaults are not persisted
// until someone explicitly saves them.
func (r *SettingsGormRepository) GetOrDefault(ctx context.Context, guildID uint64) (domain.Settings, error) {
	var m settingsModel
	if err := r.db.WithContext(ctx).First(&m, "guild_id = ?", guildID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Settings{
				GuildID:         guildID,
				WarnTimeoutDays: domain.DefaultWarnTimeoutDays,
			}, nil
		}
		return domain.Settings{}, err
	}
	return domain.Settings{GuildID: m.GuildID, WarnTimeoutDays: m.WarnTimeoutDays}, nil
}

func (r *SettingsGormRepository) Save(ctx context.Context, settings domain.Settings) error {
	m := settingsModel{
		GuildID:         settings.GuildID,
		WarnTimeoutDays: settings.WarnTimeoutDays,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}},
		UpdateAll: true,
	}).Create(&m).Error
}
