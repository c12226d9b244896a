package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// MessagesStore defines database operations for direct messages.
type MessagesStore interface {
	CreateMessage(message *entities.Message) error
	GetMessageByID(id uint) (*entities.Message, error)
	ListConversation(userA, userB uint, limit, offset int) ([]entities.Message, error)
	DeleteMessage(id uint) error
}

type MessagesController struct {
	store MessagesStore
}

func NewMessagesController(store MessagesStore) *MessagesController {
	return &MessagesController{store: store}
}

type messageRequest struct {
	SenderID    uint   `json:"sender_id" binding:"required"`
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Text        string `json:"text" binding:"required"`
}

// CreateMessage sends a direct message.
// POST /api/messages
func (mc *MessagesController) CreateMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	message := &entities.Message{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Text:        req.Text,
	}
	if err := mc.store.CreateMessage(message); err != nil {
		respondInternalError(c, err, "create message")
		return
	}

	respondCreated(c, message)
}

// GetMessage returns a single message.
// GET /api/messages/:id
func (mc *MessagesController) GetMessage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	message, err := mc.store.GetMessageByID(id)
	if err != nil {
		respondNotFound(c, "message")
		return
	}

	c.JSON(http.StatusOK, message)
}

// ListConversation returns the messages between two users.
// GET /api/messages?user_id=A&peer_id=B
func (mc *MessagesController) ListConversation(c *gin.Context) {
	userID, ok := parseQueryID(c, "user_id")
	if !ok {
		return
	}
	peerID, ok := parseQueryID(c, "peer_id")
	if !ok {
		return
	}
	limit, offset := parsePagination(c, 100)

	msgs, err := mc.store.ListConversation(userID, peerID, limit, offset)
	if err != nil {
		respondInternalError(c, err, "list conversation")
		return
	}

	c.JSON(http.StatusOK, msgs)
}

// DeleteMessage removes a message.
// DELETE /api/messages/:id
func (mc *MessagesController) DeleteMessage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := mc.store.GetMessageByID(id); err != nil {
		respondNotFound(c, "message")
		return
	}

	if err := mc.store.DeleteMessage(id); err != nil {
		respondInternalError(c, err, "delete message")
		return
	}

	respondSuccess(c, "message deleted")
}
