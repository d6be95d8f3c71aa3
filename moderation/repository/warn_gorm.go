package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tharun634/JavaBot/moderation/domain"
)

// --- Persistence Model ---

type warnModel struct {
	ID        string    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"index:idx_warns_user;not null"`
	WarnedBy  uint64    `gorm:"not null"`
	Severity  string    `gorm:"not null"`
	Reason    string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index:idx_warns_created;not null"`
}

func (warnModel) TableName() string {
	return "warns"
}

// --- Repository Implementation ---

type WarnGormRepository struct {
	db *gorm.DB
}

func NewWarnGormRepository(db *gorm.DB) *WarnGormRepository {
	return &WarnGormRepository{db: db}
}

func (r *WarnGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&warnModel{})
}

func (r *WarnGormRepository) Insert(ctx context.Context, warn *domain.Warn) error {
	if warn.ID == "" {
		warn.ID = uuid.New().String()
	}
	if warn.CreatedAt.IsZero() {
		warn.CreatedAt = time.Now()
	}

	m := warnModel{
		ID:        warn.ID,
		UserID:    warn.UserID,
		WarnedBy:  warn.WarnedBy,
		Severity:  string(warn.Severity),
		Reason:    warn.Reason,
		CreatedAt: warn.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// ListByUserSince returns the user's warnings issued at or after the cutoff,
// newest first. Warnings before the cutoff are timed out and omitted.
func (r *WarnGormRepository) ListByUserSince(ctx context.Context, userID uint64, cutoff time.Time) ([]domain.Warn, error) {
	var models []warnModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, cutoff).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	warns := make([]domain.Warn, len(models))
	for i, m := range models {
		warns[i] = domain.Warn{
			ID:        m.ID,
			UserID:    m.UserID,
			WarnedBy:  m.WarnedBy,
			Severity:  domain.Severity(m.Severity),
			Reason:    m.Reason,
			CreatedAt: m.CreatedAt,
		}
	}
	return warns, nil
}
