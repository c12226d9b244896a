package interactions

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookwormapp/bookworm/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_db_interactions_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Book{},
		&entities.BookInteraction{},
		&entities.InteractionComment{},
		&entities.Like{},
		&entities.RepostSave{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createInteraction(t *testing.T, repo *Repository, userID, bookID uint, read, liked bool) *entities.BookInteraction {
	interaction := &entities.BookInteraction{
		UserID: userID,
		BookID: bookID,
		Read:   read,
		Liked:  liked,
	}
	require.NoError(t, repo.CreateInteraction(interaction))
	return interaction
}

func TestRepository_GetInteractionByUserAndBook(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createInteraction(t, repo, 1, 2, true, false)

	got, err := repo.GetInteractionByUserAndBook(1, 2)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.Read)

	_, err = repo.GetInteractionByUserAndBook(1, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_CreateInteraction_DuplicatePair(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createInteraction(t, repo, 1, 2, true, false)

	err := repo.CreateInteraction(&entities.BookInteraction{
		UserID: 1,
		BookID: 2,
		Read:   true,
	})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRepository_CreateInteraction_SamePairDifferentUser(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createInteraction(t, repo, 1, 2, true, false)

	// The unique index is composite; another user may interact with the
	// same book, and the same user with another book.
	require.NoError(t, repo.CreateInteraction(&entities.BookInteraction{
		UserID: 3, BookID: 2, Read: true,
	}))
	require.NoError(t, repo.CreateInteraction(&entities.BookInteraction{
		UserID: 1, BookID: 4, Read: true,
	}))
}

func TestRepository_UpdateInteraction_WritesZeroValues(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	interaction := createInteraction(t, repo, 1, 2, true, true)
	interaction.Liked = false
	interaction.Description = ""

	require.NoError(t, repo.UpdateInteraction(interaction))

	var stored entities.BookInteraction
	require.NoError(t, db.First(&stored, interaction.ID).Error)
	assert.True(t, stored.Read)
	assert.False(t, stored.Liked)
	assert.Empty(t, stored.Description)
}

func TestRepository_DeleteInteractionWithOwned(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	interaction := createInteraction(t, repo, 1, 2, true, true)
	other := createInteraction(t, repo, 3, 2, true, false)

	require.NoError(t, repo.CreateComment(&entities.InteractionComment{
		InteractionID: interaction.ID,
		UserID:        5,
		Text:          "same here",
	}))
	require.NoError(t, db.Create(&entities.Like{
		UserID:            5,
		BookInteractionID: &interaction.ID,
	}).Error)
	require.NoError(t, db.Create(&entities.RepostSave{
		UserID:            5,
		Kind:              entities.RepostKindSave,
		BookInteractionID: &interaction.ID,
	}).Error)

	// Rows attached to a different interaction must survive.
	require.NoError(t, db.Create(&entities.Like{
		UserID:            5,
		BookInteractionID: &other.ID,
	}).Error)

	require.NoError(t, repo.DeleteInteractionWithOwned(interaction.ID))

	_, err := repo.GetInteractionByID(interaction.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var commentCount, likeCount, repostCount, survivorCount int64
	db.Model(&entities.InteractionComment{}).Where("interaction_id = ?", interaction.ID).Count(&commentCount)
	db.Model(&entities.Like{}).Where("book_interaction_id = ?", interaction.ID).Count(&likeCount)
	db.Model(&entities.RepostSave{}).Where("book_interaction_id = ?", interaction.ID).Count(&repostCount)
	db.Model(&entities.Like{}).Where("book_interaction_id = ?", other.ID).Count(&survivorCount)
	assert.Zero(t, commentCount)
	assert.Zero(t, likeCount)
	assert.Zero(t, repostCount)
	assert.Equal(t, int64(1), survivorCount)
}

func TestRepository_ListComments_Ordering(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	interaction := createInteraction(t, repo, 1, 2, true, false)

	require.NoError(t, repo.CreateComment(&entities.InteractionComment{
		InteractionID: interaction.ID, UserID: 5, Text: "first",
	}))
	require.NoError(t, repo.CreateComment(&entities.InteractionComment{
		InteractionID: interaction.ID, UserID: 6, Text: "second",
	}))

	comments, err := repo.ListComments(interaction.ID)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
}
