// Package messages provides database operations for direct messages.
package messages

import (
	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// Repository handles all message database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new messages repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateMessage persists a new message.
func (r *Repository) CreateMessage(message *entities.Message) error {
	return r.db.Create(message).Error
}

// GetMessageByID retrieves a message by ID.
func (r *Repository) GetMessageByID(id uint) (*entities.Message, error) {
	var message entities.Message
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListConversation returns the messages exchanged between two users, oldest
// first.
func (r *Repository) ListConversation(userA, userB uint, limit, offset int) ([]entities.Message, error) {
	var msgs []entities.Message
	query := r.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&msgs).Error
	return msgs, err
}

// DeleteMessage removes a message by ID.
func (r *Repository) DeleteMessage(id uint) error {
	return r.db.Delete(&entities.Message{}, id).Error
}
