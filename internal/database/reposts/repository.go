// Package reposts provides database operations for repost/save rows.
//
// This package implements the associations.RepostStore interface:
//
//	var _ associations.RepostStore = (*Repository)(nil)
package reposts

import (
	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// Repository handles all repost/save database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reposts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateRepostSave persists a new repost or save.
func (r *Repository) CreateRepostSave(rs *entities.RepostSave) error {
	return r.db.Create(rs).Error
}

// GetRepostSaveByID retrieves a repost/save by ID.
func (r *Repository) GetRepostSaveByID(id uint) (*entities.RepostSave, error) {
	var rs entities.RepostSave
	if err := r.db.First(&rs, id).Error; err != nil {
		return nil, err
	}
	return &rs, nil
}

// SaveRepostSave writes the full row so cleared reference columns persist as
// NULL after a retarget.
func (r *Repository) SaveRepostSave(rs *entities.RepostSave) error {
	return r.db.Save(rs).Error
}

// DeleteRepostSave removes a repost/save by ID.
func (r *Repository) DeleteRepostSave(id uint) error {
	return r.db.Delete(&entities.RepostSave{}, id).Error
}

// ListRepostSavesByUser returns a user's reposts and saves, optionally
// filtered by kind, newest first.
func (r *Repository) ListRepostSavesByUser(userID uint, kind entities.RepostKind, limit, offset int) ([]entities.RepostSave, int64, error) {
	var rows []entities.RepostSave
	var total int64

	base := r.db.Model(&entities.RepostSave{}).Where("user_id = ?", userID)
	if kind != "" {
		base = base.Where("kind = ?", kind)
	}
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&rows).Error
	return rows, total, err
}
