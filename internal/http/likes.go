package http

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/associations"
	"github.com/bookwormapp/bookworm/internal/audit"
	"github.com/bookwormapp/bookworm/internal/entities"
	"github.com/bookwormapp/bookworm/internal/tasks"
)

// LikesStore defines the database operations the likes controller needs
// beyond the association service itself.
type LikesStore interface {
	GetLikeByID(id uint) (*entities.Like, error)
	ListLikesByUser(userID uint, limit, offset int) ([]entities.Like, int64, error)
	DeleteLike(id uint) error
}

type LikesController struct {
	service    *associations.LikeService
	store      LikesStore
	taskClient *tasks.Client
	auditor    *audit.Service
}

func NewLikesController(service *associations.LikeService, store LikesStore, taskClient *tasks.Client, auditor *audit.Service) *LikesController {
	return &LikesController{
		service:    service,
		store:      store,
		taskClient: taskClient,
		auditor:    auditor,
	}
}

type createLikeRequest struct {
	UserID  uint                       `json:"user_id" binding:"required"`
	Targets associations.LikeTargetSet `json:"targets"`
}

type modifyLikeRequest struct {
	Targets associations.LikeTargetSet `json:"targets"`
}

// CreateLike attaches a new like to exactly one piece of content.
// POST /api/likes
func (lc *LikesController) CreateLike(c *gin.Context) {
	var req createLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	like, err := lc.service.CreateLike(req.UserID, req.Targets)
	if err != nil {
		respondDomainError(c, err, "create like")
		return
	}

	lc.notifyLike(like.ID)
	if lc.auditor != nil {
		slot, targetID := likeTarget(like)
		lc.auditor.LogAssociation(req.UserID, "like_create", "like", like.ID, slot, targetID, nil)
	}

	respondCreated(c, like)
}

// ModifyLike replaces the single reference of an existing like.
// PUT /api/likes/:id
func (lc *LikesController) ModifyLike(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req modifyLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	like, err := lc.service.ModifyLike(id, req.Targets)
	if err != nil {
		respondDomainError(c, err, "modify like")
		return
	}

	if lc.auditor != nil {
		slot, targetID := likeTarget(like)
		lc.auditor.LogAssociation(like.UserID, "like_modify", "like", like.ID, slot, targetID, nil)
	}

	c.JSON(200, like)
}

// ListLikes returns a user's likes.
// GET /api/likes?user_id=N
func (lc *LikesController) ListLikes(c *gin.Context) {
	userID, ok := parseQueryID(c, "user_id")
	if !ok {
		return
	}
	limit, offset := parsePagination(c, 50)

	likes, total, err := lc.store.ListLikesByUser(userID, limit, offset)
	if err != nil {
		respondInternalError(c, err, "list likes")
		return
	}

	c.JSON(200, PaginatedResponse{
		Data:    likes,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(likes)) < total,
	})
}

// DeleteLike removes a like.
// DELETE /api/likes/:id
func (lc *LikesController) DeleteLike(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := lc.store.GetLikeByID(id); err != nil {
		respondNotFound(c, "like")
		return
	}

	if err := lc.store.DeleteLike(id); err != nil {
		respondInternalError(c, err, "delete like")
		return
	}

	respondSuccess(c, "like deleted")
}

func (lc *LikesController) notifyLike(likeID uint) {
	if lc.taskClient == nil {
		return
	}
	if _, err := lc.taskClient.Add(tasks.LikeNotificationTask{LikeID: likeID}).Save(); err != nil {
		log.Printf("Failed to enqueue like notification for %d: %v", likeID, err)
	}
}

// likeTarget reports the populated slot of a like for audit metadata.
func likeTarget(like *entities.Like) (string, uint) {
	switch {
	case like.MessageID != nil:
		return associations.SlotMessage, *like.MessageID
	case like.BookInteractionID != nil:
		return associations.SlotBookInteraction, *like.BookInteractionID
	case like.ReviewID != nil:
		return associations.SlotReview, *like.ReviewID
	case like.QuoteID != nil:
		return associations.SlotQuote, *like.QuoteID
	}
	return "", 0
}
