// Package interactions provides database operations for book interactions
// and their owned comments.
//
// This package implements the interactions.Store interface defined in
// internal/interactions/service.go:
//
//	var _ interactions.Store = (*Repository)(nil)
package interactions

import (
	"log"

	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// Repository handles all book-interaction database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new interactions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetInteractionByID retrieves an interaction by its row ID.
func (r *Repository) GetInteractionByID(id uint) (*entities.BookInteraction, error) {
	var interaction entities.BookInteraction
	if err := r.db.First(&interaction, id).Error; err != nil {
		return nil, err
	}
	return &interaction, nil
}

// GetInteractionByUserAndBook retrieves the single interaction for a
// (user, book) pair. Returns gorm.ErrRecordNotFound when the pair has none.
func (r *Repository) GetInteractionByUserAndBook(userID, bookID uint) (*entities.BookInteraction, error) {
	var interaction entities.BookInteraction
	err := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&interaction).Error
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

// CreateInteraction persists a new interaction. A concurrent create for the
// same (user, book) pair trips the composite unique index and surfaces as
// gorm.ErrDuplicatedKey.
func (r *Repository) CreateInteraction(interaction *entities.BookInteraction) error {
	return r.db.Create(interaction).Error
}

// UpdateInteraction overwrites the mutable state of an existing row. The
// column list is explicit so liked=false is written rather than skipped as a
// zero value.
func (r *Repository) UpdateInteraction(interaction *entities.BookInteraction) error {
	return r.db.Model(interaction).Updates(map[string]any{
		"read":        interaction.Read,
		"liked":       interaction.Liked,
		"description": interaction.Description,
	}).Error
}

// DeleteInteractionWithOwned removes an interaction row and everything it
// exclusively owns, in one transaction: its comments, the likes attached to
// it, and the repost/saves attached to it. The enumeration is deliberate; no
// ORM-level cascade graph is relied upon.
func (r *Repository) DeleteInteractionWithOwned(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("interaction_id = ?", id).Delete(&entities.InteractionComment{})
		if res.Error != nil {
			return res.Error
		}
		comments := res.RowsAffected

		res = tx.Where("book_interaction_id = ?", id).Delete(&entities.Like{})
		if res.Error != nil {
			return res.Error
		}
		likes := res.RowsAffected

		res = tx.Where("book_interaction_id = ?", id).Delete(&entities.RepostSave{})
		if res.Error != nil {
			return res.Error
		}
		reposts := res.RowsAffected

		if err := tx.Delete(&entities.BookInteraction{}, id).Error; err != nil {
			return err
		}

		log.Printf("Deleted interaction %d with %d comments, %d likes, %d repost/saves",
			id, comments, likes, reposts)
		return nil
	})
}

// CreateComment attaches a comment to an interaction.
func (r *Repository) CreateComment(comment *entities.InteractionComment) error {
	return r.db.Create(comment).Error
}

// ListComments returns the comments of an interaction, oldest first.
func (r *Repository) ListComments(interactionID uint) ([]entities.InteractionComment, error) {
	var comments []entities.InteractionComment
	err := r.db.Where("interaction_id = ?", interactionID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
