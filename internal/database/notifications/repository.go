// Package notifications provides database operations for user notifications
// written by the background task queue.
package notifications

import (
	"time"

	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// Repository handles all notification database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new notifications repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification persists a new notification.
func (r *Repository) CreateNotification(n *entities.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	return r.db.Create(n).Error
}

// ListNotifications returns a user's notifications, newest first.
func (r *Repository) ListNotifications(userID uint, limit, offset int) ([]entities.Notification, int64, error) {
	var rows []entities.Notification
	var total int64

	query := r.db.Model(&entities.Notification{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&rows).Error
	return rows, total, err
}

// MarkRead stamps a notification as read.
func (r *Repository) MarkRead(id uint) error {
	now := time.Now()
	return r.db.Model(&entities.Notification{}).
		Where("id = ?", id).
		Update("read_at", &now).Error
}

// DeleteOldNotifications removes notifications older than the retention
// window. Returns the number of deleted rows.
func (r *Repository) DeleteOldNotifications(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := r.db.Where("created_at < ?", cutoff).Delete(&entities.Notification{})
	return result.RowsAffected, result.Error
}
