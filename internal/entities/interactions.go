package entities

import "time"

// BookInteraction records whether a user has read and/or liked a specific
// book. At most one row exists per (user, book) pair; the composite unique
// index is the backstop for concurrent writers that both pass the in-memory
// check.
//
// A liked interaction is always a read one. Rows are hard-deleted (no
// gorm.DeletedAt): "previously interacted, now unread" is not representable,
// un-reading removes the row together with everything it owns.
type BookInteraction struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	UserID      uint                 `gorm:"uniqueIndex:idx_interactions_user_book" json:"user_id"`
	BookID      uint                 `gorm:"uniqueIndex:idx_interactions_user_book" json:"book_id"`
	Read        bool                 `gorm:"default:false" json:"read"`
	Liked       bool                 `gorm:"default:false" json:"liked"`
	Description string               `gorm:"type:text" json:"description,omitempty"`
	User        User                 `gorm:"foreignKey:UserID" json:"-"`
	Book        Book                 `gorm:"foreignKey:BookID" json:"-"`
	Comments    []InteractionComment `gorm:"foreignKey:InteractionID" json:"comments,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// InteractionComment is a comment attached to a book interaction. Comments
// are owned by the interaction and are removed when it is deleted; the
// deletion is an explicit repository operation, not an ORM cascade.
type InteractionComment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InteractionID uint      `gorm:"index" json:"interaction_id"`
	UserID        uint      `gorm:"index" json:"user_id"`
	Text          string    `gorm:"type:text" json:"text"`
	CreatedAt     time.Time `json:"created_at"`
}

func (BookInteraction) TableName() string {
	return "book_interactions"
}

func (InteractionComment) TableName() string {
	return "interaction_comments"
}
