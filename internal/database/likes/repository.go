// Package likes provides database operations for like rows.
//
// This package implements the associations.LikeStore interface:
//
//	var _ associations.LikeStore = (*Repository)(nil)
package likes

import (
	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// Repository handles all like database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new likes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateLike persists a new like.
func (r *Repository) CreateLike(like *entities.Like) error {
	return r.db.Create(like).Error
}

// GetLikeByID retrieves a like by ID.
func (r *Repository) GetLikeByID(id uint) (*entities.Like, error) {
	var like entities.Like
	if err := r.db.First(&like, id).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// SaveLike writes the full row, including nil reference columns. Save (not
// Updates) is required here: retargeting clears the previous reference, and
// the cleared column must reach the database as NULL rather than being
// skipped as a zero value.
func (r *Repository) SaveLike(like *entities.Like) error {
	return r.db.Save(like).Error
}

// DeleteLike removes a like by ID.
func (r *Repository) DeleteLike(id uint) error {
	return r.db.Delete(&entities.Like{}, id).Error
}

// ListLikesByUser returns a user's likes, newest first.
func (r *Repository) ListLikesByUser(userID uint, limit, offset int) ([]entities.Like, int64, error) {
	var likes []entities.Like
	var total int64

	query := r.db.Model(&entities.Like{}).Where("user_id = ?", userID)
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

	err := query.Find(&likes).Error
	return likes, total, err
}

// CountLikesForReview returns the number of like rows targeting a review.
// Duplicate likes by the same user each count once.
func (r *Repository) CountLikesForReview(reviewID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Like{}).Where("review_id = ?", reviewID).Count(&count).Error
	return count, err
}
