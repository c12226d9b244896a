package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// NotificationsStore defines database operations for notification listing.
type NotificationsStore interface {
	ListNotifications(userID uint, limit, offset int) ([]entities.Notification, int64, error)
	MarkRead(id uint) error
}

type NotificationsController struct {
	store NotificationsStore
}

func NewNotificationsController(store NotificationsStore) *NotificationsController {
	return &NotificationsController{store: store}
}

// ListNotifications returns a user's notifications, newest first.
// GET /api/notifications?user_id=N
func (nc *NotificationsController) ListNotifications(c *gin.Context) {
	userID, ok := parseQueryID(c, "user_id")
	if !ok {
		return
	}
	limit, offset := parsePagination(c, 50)

	rows, total, err := nc.store.ListNotifications(userID, limit, offset)
	if err != nil {
		respondInternalError(c, err, "list notifications")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    rows,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(rows)) < total,
	})
}

// MarkNotificationRead stamps a notification as read.
// POST /api/notifications/:id/read
func (nc *NotificationsController) MarkNotificationRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := nc.store.MarkRead(id); err != nil {
		respondInternalError(c, err, "mark notification read")
		return
	}

	respondSuccess(c, "notification marked read")
}
