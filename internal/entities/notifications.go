package entities

import "time"

type NotificationKind string

const (
	NotificationKindLike   NotificationKind = "like"
	NotificationKindRepost NotificationKind = "repost"
	NotificationKindSave   NotificationKind = "save"
)

// Notification tells a content owner that someone liked, reposted or saved
// their content. Rows are written by the background task queue, not inline
// with the request.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"index" json:"user_id"` // recipient (content owner)
	ActorID   uint             `json:"actor_id"`
	Kind      NotificationKind `gorm:"size:20" json:"kind"`
	Payload   string           `gorm:"type:text" json:"payload,omitempty"` // JSON with target details
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	CreatedAt time.Time        `gorm:"index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
