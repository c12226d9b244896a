// Package quotes provides database operations for book quotes.
package quotes

import (
	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// Repository handles all quote database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new quotes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateQuote persists a new quote.
func (r *Repository) CreateQuote(quote *entities.Quote) error {
	return r.db.Create(quote).Error
}

// GetQuoteByID retrieves a quote by ID.
func (r *Repository) GetQuoteByID(id uint) (*entities.Quote, error) {
	var quote entities.Quote
	if err := r.db.First(&quote, id).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}

// ListQuotesByBook returns all quotes for a book in page order.
func (r *Repository) ListQuotesByBook(bookID uint) ([]entities.Quote, error) {
	var quotes []entities.Quote
	err := r.db.Where("book_id = ?", bookID).
		Order("page ASC, created_at ASC").
		Find(&quotes).Error
	return quotes, err
}

// DeleteQuote removes a quote by ID.
func (r *Repository) DeleteQuote(id uint) error {
	return r.db.Delete(&entities.Quote{}, id).Error
}
