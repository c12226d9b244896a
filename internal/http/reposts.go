package http

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/associations"
	"github.com/bookwormapp/bookworm/internal/audit"
	"github.com/bookwormapp/bookworm/internal/entities"
	"github.com/bookwormapp/bookworm/internal/tasks"
)

// RepostsStore defines the database operations the reposts controller needs
// beyond the association service itself.
type RepostsStore interface {
	GetRepostSaveByID(id uint) (*entities.RepostSave, error)
	ListRepostSavesByUser(userID uint, kind entities.RepostKind, limit, offset int) ([]entities.RepostSave, int64, error)
	DeleteRepostSave(id uint) error
}

type RepostsController struct {
	service    *associations.RepostService
	store      RepostsStore
	taskClient *tasks.Client
	auditor    *audit.Service
}

func NewRepostsController(service *associations.RepostService, store RepostsStore, taskClient *tasks.Client, auditor *audit.Service) *RepostsController {
	return &RepostsController{
		service:    service,
		store:      store,
		taskClient: taskClient,
		auditor:    auditor,
	}
}

type createRepostRequest struct {
	UserID  uint                          `json:"user_id" binding:"required"`
	Kind    entities.RepostKind           `json:"kind" binding:"required"`
	Targets associations.ContentTargetSet `json:"targets"`
}

type modifyRepostRequest struct {
	Targets associations.ContentTargetSet `json:"targets"`
}

// CreateRepostSave attaches a new repost or save to exactly one piece of
// content.
// POST /api/reposts
func (rc *RepostsController) CreateRepostSave(c *gin.Context) {
	var req createRepostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	rs, err := rc.service.CreateRepostSave(req.UserID, req.Kind, req.Targets)
	if err != nil {
		respondDomainError(c, err, "create repost/save")
		return
	}

	rc.notifyRepost(rs.ID)
	if rc.auditor != nil {
		slot, targetID := repostTarget(rs)
		rc.auditor.LogAssociation(req.UserID, "repost_save_create", "repost_save", rs.ID, slot, targetID, nil)
	}

	respondCreated(c, rs)
}

// ModifyRepostSave replaces the single reference of an existing repost/save.
// PUT /api/reposts/:id
func (rc *RepostsController) ModifyRepostSave(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req modifyRepostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	rs, err := rc.service.ModifyRepostSave(id, req.Targets)
	if err != nil {
		respondDomainError(c, err, "modify repost/save")
		return
	}

	if rc.auditor != nil {
		slot, targetID := repostTarget(rs)
		rc.auditor.LogAssociation(rs.UserID, "repost_save_modify", "repost_save", rs.ID, slot, targetID, nil)
	}

	c.JSON(200, rs)
}

// ListRepostSaves returns a user's reposts/saves, optionally filtered by
// kind.
// GET /api/reposts?user_id=N&kind=save
func (rc *RepostsController) ListRepostSaves(c *gin.Context) {
	userID, ok := parseQueryID(c, "user_id")
	if !ok {
		return
	}
	kind := entities.RepostKind(c.Query("kind"))
	if kind != "" && kind != entities.RepostKindRepost && kind != entities.RepostKindSave {
		respondBadRequest(c, "kind must be 'repost' or 'save'")
		return
	}
	limit, offset := parsePagination(c, 50)

	rows, total, err := rc.store.ListRepostSavesByUser(userID, kind, limit, offset)
	if err != nil {
		respondInternalError(c, err, "list reposts")
		return
	}

	c.JSON(200, PaginatedResponse{
		Data:    rows,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(rows)) < total,
	})
}

// DeleteRepostSave removes a repost/save.
// DELETE /api/reposts/:id
func (rc *RepostsController) DeleteRepostSave(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := rc.store.GetRepostSaveByID(id); err != nil {
		respondNotFound(c, "repost/save")
		return
	}

	if err := rc.store.DeleteRepostSave(id); err != nil {
		respondInternalError(c, err, "delete repost/save")
		return
	}

	respondSuccess(c, "repost/save deleted")
}

func (rc *RepostsController) notifyRepost(id uint) {
	if rc.taskClient == nil {
		return
	}
	if _, err := rc.taskClient.Add(tasks.RepostNotificationTask{RepostSaveID: id}).Save(); err != nil {
		log.Printf("Failed to enqueue repost notification for %d: %v", id, err)
	}
}

// repostTarget reports the populated slot of a repost/save for audit
// metadata.
func repostTarget(rs *entities.RepostSave) (string, uint) {
	switch {
	case rs.BookInteractionID != nil:
		return associations.SlotBookInteraction, *rs.BookInteractionID
	case rs.ReviewID != nil:
		return associations.SlotReview, *rs.ReviewID
	case rs.QuoteID != nil:
		return associations.SlotQuote, *rs.QuoteID
	}
	return "", 0
}
