package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/audit"
	"github.com/bookwormapp/bookworm/internal/entities"
	"github.com/bookwormapp/bookworm/internal/interactions"
)

// InteractionCommentsStore handles the comments owned by an interaction.
type InteractionCommentsStore interface {
	GetInteractionByID(id uint) (*entities.BookInteraction, error)
	CreateComment(comment *entities.InteractionComment) error
	ListComments(interactionID uint) ([]entities.InteractionComment, error)
}

type InteractionsController struct {
	service  *interactions.Service
	comments InteractionCommentsStore
	auditor  *audit.Service
}

func NewInteractionsController(service *interactions.Service, comments InteractionCommentsStore, auditor *audit.Service) *InteractionsController {
	return &InteractionsController{
		service:  service,
		comments: comments,
		auditor:  auditor,
	}
}

type upsertInteractionRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Read        bool   `json:"read"`
	Liked       bool   `json:"liked"`
	Description string `json:"description"`
}

// UpsertInteraction creates, updates or deletes the interaction for a
// (user, book) pair. Supplying read=false on an existing interaction deletes
// it together with everything it owns; that outcome is a 204.
// PUT /api/books/:id/interaction
func (ic *InteractionsController) UpsertInteraction(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req upsertInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	interaction, err := ic.service.Upsert(req.UserID, bookID, req.Read, req.Liked, req.Description)
	if err != nil {
		if ic.auditor != nil {
			ic.auditor.LogInteraction(req.UserID, bookID, req.Read, req.Liked, false, err)
		}
		respondDomainError(c, err, "upsert interaction")
		return
	}

	if interaction == nil {
		// Un-read: the row and its owned comments/likes/reposts are gone.
		if ic.auditor != nil {
			ic.auditor.LogInteraction(req.UserID, bookID, req.Read, req.Liked, true, nil)
		}
		c.Status(http.StatusNoContent)
		return
	}

	if ic.auditor != nil {
		ic.auditor.LogInteraction(req.UserID, bookID, req.Read, req.Liked, false, nil)
	}
	c.JSON(http.StatusOK, interaction)
}

// GetInteraction returns the interaction for a (user, book) pair.
// GET /api/books/:id/interaction?user_id=N
func (ic *InteractionsController) GetInteraction(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseQueryID(c, "user_id")
	if !ok {
		return
	}

	interaction, err := ic.service.Get(userID, bookID)
	if err != nil {
		respondDomainError(c, err, "get interaction")
		return
	}
	if interaction == nil {
		respondNotFound(c, "interaction")
		return
	}

	c.JSON(http.StatusOK, interaction)
}

type createCommentRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// CreateComment attaches a comment to an existing interaction.
// POST /api/interactions/:id/comments
func (ic *InteractionsController) CreateComment(c *gin.Context) {
	interactionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if _, err := ic.comments.GetInteractionByID(interactionID); err != nil {
		respondNotFound(c, "interaction")
		return
	}

	comment := &entities.InteractionComment{
		InteractionID: interactionID,
		UserID:        req.UserID,
		Text:          req.Text,
	}
	if err := ic.comments.CreateComment(comment); err != nil {
		respondInternalError(c, err, "create interaction comment")
		return
	}

	respondCreated(c, comment)
}

// ListComments returns the comments of an interaction.
// GET /api/interactions/:id/comments
func (ic *InteractionsController) ListComments(c *gin.Context) {
	interactionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := ic.comments.ListComments(interactionID)
	if err != nil {
		respondInternalError(c, err, "list interaction comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}
