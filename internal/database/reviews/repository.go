// Package reviews provides database operations for book reviews.
//
// The repository doubles as the ReviewGetter used by target resolution:
//
//	var _ associations.ReviewGetter = (*Repository)(nil)
package reviews

import (
	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// Repository handles all review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateReview persists a new review.
func (r *Repository) CreateReview(review *entities.Review) error {
	return r.db.Create(review).Error
}

// GetReviewByID retrieves a review by ID.
func (r *Repository) GetReviewByID(id uint) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ListReviewsByBook returns all reviews for a book, newest first.
func (r *Repository) ListReviewsByBook(bookID uint, limit, offset int) ([]entities.Review, int64, error) {
	var reviews []entities.Review
	var total int64

	query := r.db.Model(&entities.Review{}).Where("book_id = ?", bookID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.db.Where("book_id = ?", bookID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&reviews).Error
	return reviews, total, err
}

// UpdateReview updates a review's rating and text.
func (r *Repository) UpdateReview(review *entities.Review) error {
	return r.db.Model(review).Updates(map[string]any{
		"rating": review.Rating,
		"text":   review.Text,
	}).Error
}

// DeleteReview removes a review by ID.
func (r *Repository) DeleteReview(id uint) error {
	return r.db.Delete(&entities.Review{}, id).Error
}
