package notifications

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookwormapp/bookworm/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_notifications_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Notification{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func TestRepository_CreateAndList(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.CreateNotification(&entities.Notification{
		UserID: 1, ActorID: 2, Kind: entities.NotificationKindLike,
	}))
	require.NoError(t, repo.CreateNotification(&entities.Notification{
		UserID: 1, ActorID: 3, Kind: entities.NotificationKindSave,
	}))
	require.NoError(t, repo.CreateNotification(&entities.Notification{
		UserID: 9, ActorID: 2, Kind: entities.NotificationKindLike,
	}))

	notifications, total, err := repo.ListNotifications(1, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, notifications, 2)
}

func TestRepository_MarkRead(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	n := &entities.Notification{UserID: 1, ActorID: 2, Kind: entities.NotificationKindLike}
	require.NoError(t, repo.CreateNotification(n))
	require.Nil(t, n.ReadAt)

	require.NoError(t, repo.MarkRead(n.ID))

	var stored entities.Notification
	require.NoError(t, db.First(&stored, n.ID).Error)
	assert.NotNil(t, stored.ReadAt)
}

func TestRepository_DeleteOldNotifications(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	old := &entities.Notification{UserID: 1, ActorID: 2, Kind: entities.NotificationKindLike}
	require.NoError(t, repo.CreateNotification(old))
	require.NoError(t, db.Model(old).Update("created_at", time.Now().Add(-72*time.Hour)).Error)

	recent := &entities.Notification{UserID: 1, ActorID: 3, Kind: entities.NotificationKindRepost}
	require.NoError(t, repo.CreateNotification(recent))

	deleted, err := repo.DeleteOldNotifications(24 * time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, total, err := repo.ListNotifications(1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
