package entities

import "time"

type RepostKind string

const (
	RepostKindRepost RepostKind = "repost"
	RepostKindSave   RepostKind = "save"
)

// Like attaches a user's like to exactly one piece of content. The four
// reference columns are all nullable; the single-reference rule is enforced
// by the association service before any write, and writes always set the one
// chosen column and NULL the other three.
//
// There is deliberately no unique index on (user, target): the same user may
// like the same content more than once. See DESIGN.md.
type Like struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"index" json:"user_id"`
	MessageID         *uint     `gorm:"index" json:"message_id,omitempty"`
	BookInteractionID *uint     `gorm:"index" json:"book_interaction_id,omitempty"`
	ReviewID          *uint     `gorm:"index" json:"review_id,omitempty"`
	QuoteID           *uint     `gorm:"index" json:"quote_id,omitempty"`
	User              User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RepostSave is a repost or a save of a single piece of content. Messages
// cannot be reposted or saved, so the slot set is one narrower than Like's.
type RepostSave struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"index" json:"user_id"`
	Kind              RepostKind `gorm:"size:10" json:"kind"`
	BookInteractionID *uint      `gorm:"index" json:"book_interaction_id,omitempty"`
	ReviewID          *uint      `gorm:"index" json:"review_id,omitempty"`
	QuoteID           *uint      `gorm:"index" json:"quote_id,omitempty"`
	User              User       `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (Like) TableName() string {
	return "likes"
}

func (RepostSave) TableName() string {
	return "repost_saves"
}
