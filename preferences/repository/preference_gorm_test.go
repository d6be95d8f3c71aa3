package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tharun634/JavaBot/preferences/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newTestRepo(t *testing.T) *PreferenceGormRepository {
	t.Helper()
	repo := NewPreferenceGormRepository(openTestDB(t))
	if err := repo.InitSchema(context.Background()); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}
	return repo
}

func TestGetOrCreateDefaultsToDisabled(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	pref, err := repo.GetOrCreate(ctx, 100, domain.KindQOTWReminder)
	assert.NoError(t, err)
	assert.Equal(t, uint64(100), pref.UserID)
	assert.Equal(t, domain.KindQOTWReminder, pref.Kind)
	assert.False(t, pref.Enabled)
}

func TestGetOrCreateKeepsExistingState(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Set(ctx, 100, domain.KindHelpThanksDM, true))

	pref, err := repo.GetOrCreate(ctx, 100, domain.KindHelpThanksDM)
	assert.NoError(t, err)
	assert.True(t, pref.Enabled)
}

func TestKindsAreIndependentPerUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Set(ctx, 100, domain.KindQOTWReminder, true))

	// Same user, other kind: still the disabled default.
	other, err := repo.GetOrCreate(ctx, 100, domain.KindHelpThanksDM)
	assert.NoError(t, err)
	assert.False(t, other.Enabled)

	// Other user, same kind: untouched as well.
	stranger, err := repo.GetOrCreate(ctx, 200, domain.KindQOTWReminder)
	assert.NoError(t, err)
	assert.False(t, stranger.Enabled)
}

func TestSetTogglesExistingRecord(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Set(ctx, 100, domain.KindQOTWReminder, true))
	assert.NoError(t, repo.Set(ctx, 100, domain.KindQOTWReminder, false))

	pref, err := repo.GetOrCreate(ctx, 100, domain.KindQOTWReminder)
	assert.NoError(t, err)
	assert.False(t, pref.Enabled)
}
