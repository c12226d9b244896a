package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// QuotesStore defines database operations for quote management.
type QuotesStore interface {
	CreateQuote(quote *entities.Quote) error
	GetQuoteByID(id uint) (*entities.Quote, error)
	ListQuotesByBook(bookID uint) ([]entities.Quote, error)
	DeleteQuote(id uint) error
}

type QuotesController struct {
	store QuotesStore
}

func NewQuotesController(store QuotesStore) *QuotesController {
	return &QuotesController{store: store}
}

type quoteRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	BookID uint   `json:"book_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
	Page   int    `json:"page"`
}

// CreateQuote creates a book quote.
// POST /api/quotes
func (qc *QuotesController) CreateQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	quote := &entities.Quote{
		UserID: req.UserID,
		BookID: req.BookID,
		Text:   req.Text,
		Page:   req.Page,
	}
	if err := qc.store.CreateQuote(quote); err != nil {
		respondInternalError(c, err, "create quote")
		return
	}

	respondCreated(c, quote)
}

// GetQuote returns a single quote.
// GET /api/quotes/:id
func (qc *QuotesController) GetQuote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quote, err := qc.store.GetQuoteByID(id)
	if err != nil {
		respondNotFound(c, "quote")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ListQuotesByBook returns the quotes of a book in page order.
// GET /api/books/:id/quotes
func (qc *QuotesController) ListQuotesByBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quotes, err := qc.store.ListQuotesByBook(bookID)
	if err != nil {
		respondInternalError(c, err, "list quotes")
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// DeleteQuote removes a quote.
// DELETE /api/quotes/:id
func (qc *QuotesController) DeleteQuote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := qc.store.GetQuoteByID(id); err != nil {
		respondNotFound(c, "quote")
		return
	}

	if err := qc.store.DeleteQuote(id); err != nil {
		respondInternalError(c, err, "delete quote")
		return
	}

	respondSuccess(c, "quote deleted")
}
