package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// ReviewsStore defines database operations for review management.
type ReviewsStore interface {
	CreateReview(review *entities.Review) error
	GetReviewByID(id uint) (*entities.Review, error)
	ListReviewsByBook(bookID uint, limit, offset int) ([]entities.Review, int64, error)
	UpdateReview(review *entities.Review) error
	DeleteReview(id uint) error
}

type ReviewsController struct {
	store ReviewsStore
}

func NewReviewsController(store ReviewsStore) *ReviewsController {
	return &ReviewsController{store: store}
}

type reviewRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	BookID uint   `json:"book_id" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text"`
}

// CreateReview creates a book review.
// POST /api/reviews
func (rc *ReviewsController) CreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	review := &entities.Review{
		UserID: req.UserID,
		BookID: req.BookID,
		Rating: req.Rating,
		Text:   req.Text,
	}
	if err := rc.store.CreateReview(review); err != nil {
		respondInternalError(c, err, "create review")
		return
	}

	respondCreated(c, review)
}

// GetReview returns a single review.
// GET /api/reviews/:id
func (rc *ReviewsController) GetReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := rc.store.GetReviewByID(id)
	if err != nil {
		respondNotFound(c, "review")
		return
	}

	c.JSON(http.StatusOK, review)
}

// ListReviewsByBook returns the reviews of a book.
// GET /api/books/:id/reviews
func (rc *ReviewsController) ListReviewsByBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit, offset := parsePagination(c, 20)

	reviews, total, err := rc.store.ListReviewsByBook(bookID, limit, offset)
	if err != nil {
		respondInternalError(c, err, "list reviews")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    reviews,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(reviews)) < total,
	})
}

// DeleteReview removes a review.
// DELETE /api/reviews/:id
func (rc *ReviewsController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := rc.store.GetReviewByID(id); err != nil {
		respondNotFound(c, "review")
		return
	}

	if err := rc.store.DeleteReview(id); err != nil {
		respondInternalError(c, err, "delete review")
		return
	}

	respondSuccess(c, "review deleted")
}
