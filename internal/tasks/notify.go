package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/bookwormapp/bookworm/internal/associations"
	"github.com/bookwormapp/bookworm/internal/entities"
)

// NotificationStore persists notifications produced by the queue.
type NotificationStore interface {
	CreateNotification(n *entities.Notification) error
}

// LikeLoader loads a like row for fan-out.
type LikeLoader interface {
	GetLikeByID(id uint) (*entities.Like, error)
}

// RepostLoader loads a repost/save row for fan-out.
type RepostLoader interface {
	GetRepostSaveByID(id uint) (*entities.RepostSave, error)
}

// LikeNotificationTask notifies the content owner that their content was
// liked. The task carries only the like ID; the processor re-loads the row
// so a like deleted before the task runs is silently skipped.
type LikeNotificationTask struct {
	LikeID uint `json:"like_id"`
}

// Config returns the queue configuration for like notifications.
func (t LikeNotificationTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "notify_like",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// LikeNotificationProcessor creates a processor for LikeNotificationTask.
func LikeNotificationProcessor(likes LikeLoader, likeService *associations.LikeService, store NotificationStore) backlite.QueueProcessor[LikeNotificationTask] {
	return func(ctx context.Context, task LikeNotificationTask) error {
		like, err := likes.GetLikeByID(task.LikeID)
		if err != nil {
			log.Printf("[TASK] Like %d gone before notification, skipping", task.LikeID)
			return nil
		}

		target, err := likeService.Target(like)
		if err != nil {
			var notFound *associations.TargetNotFoundError
			if errors.As(err, &notFound) {
				log.Printf("[TASK] Like %d target gone before notification, skipping", task.LikeID)
				return nil
			}
			return fmt.Errorf("resolve like %d target: %w", task.LikeID, err)
		}

		owner := target.OwnerID()
		if owner == 0 || owner == like.UserID {
			return nil
		}

		payload, _ := json.Marshal(map[string]any{
			"slot":      target.Slot,
			"target_id": target.ID,
			"like_id":   like.ID,
		})

		return store.CreateNotification(&entities.Notification{
			UserID:  owner,
			ActorID: like.UserID,
			Kind:    entities.NotificationKindLike,
			Payload: string(payload),
		})
	}
}

// NewLikeNotificationQueue creates the backlite queue for like notifications.
func NewLikeNotificationQueue(likes LikeLoader, likeService *associations.LikeService, store NotificationStore) backlite.Queue {
	return backlite.NewQueue(LikeNotificationProcessor(likes, likeService, store))
}

// RepostNotificationTask notifies the content owner that their content was
// reposted or saved.
type RepostNotificationTask struct {
	RepostSaveID uint `json:"repost_save_id"`
}

// Config returns the queue configuration for repost/save notifications.
func (t RepostNotificationTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "notify_repost",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RepostNotificationProcessor creates a processor for RepostNotificationTask.
func RepostNotificationProcessor(reposts RepostLoader, repostService *associations.RepostService, store NotificationStore) backlite.QueueProcessor[RepostNotificationTask] {
	return func(ctx context.Context, task RepostNotificationTask) error {
		rs, err := reposts.GetRepostSaveByID(task.RepostSaveID)
		if err != nil {
			log.Printf("[TASK] Repost/save %d gone before notification, skipping", task.RepostSaveID)
			return nil
		}

		target, err := repostService.Target(rs)
		if err != nil {
			var notFound *associations.TargetNotFoundError
			if errors.As(err, &notFound) {
				log.Printf("[TASK] Repost/save %d target gone before notification, skipping", task.RepostSaveID)
				return nil
			}
			return fmt.Errorf("resolve repost_save %d target: %w", task.RepostSaveID, err)
		}

		owner := target.OwnerID()
		if owner == 0 || owner == rs.UserID {
			return nil
		}

		kind := entities.NotificationKindRepost
		if rs.Kind == entities.RepostKindSave {
			kind = entities.NotificationKindSave
		}

		payload, _ := json.Marshal(map[string]any{
			"slot":           target.Slot,
			"target_id":      target.ID,
			"repost_save_id": rs.ID,
		})

		return store.CreateNotification(&entities.Notification{
			UserID:  owner,
			ActorID: rs.UserID,
			Kind:    kind,
			Payload: string(payload),
		})
	}
}

// NewRepostNotificationQueue creates the backlite queue for repost/save
// notifications.
func NewRepostNotificationQueue(reposts RepostLoader, repostService *associations.RepostService, store NotificationStore) backlite.Queue {
	return backlite.NewQueue(RepostNotificationProcessor(reposts, repostService, store))
}
