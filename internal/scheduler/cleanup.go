// Package scheduler runs the periodic retention cleanups. It only enqueues
// tasks; the task queue workers do the deleting.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/bookwormapp/bookworm/internal/config"
	"github.com/bookwormapp/bookworm/internal/tasks"
)

// CleanupScheduler enqueues the audit and notification cleanup tasks on a
// cron schedule.
type CleanupScheduler struct {
	taskClient *tasks.Client
	cfg        config.Cleanup

	cron       *cron.Cron
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewCleanupScheduler creates a new scheduler instance.
func NewCleanupScheduler(taskClient *tasks.Client, cfg config.Cleanup) *CleanupScheduler {
	return &CleanupScheduler{
		taskClient: taskClient,
		cfg:        cfg,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if cleanup is enabled.
func (s *CleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.Enabled {
		log.Printf("Cleanup scheduler: disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.enqueueCleanups); err != nil {
		return fmt.Errorf("invalid cleanup schedule '%s': %w", s.cfg.Schedule, err)
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Cleanup scheduler: started with schedule '%s'", s.cfg.Schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running enqueue to
// complete.
func (s *CleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Cleanup scheduler: stopped")
}

// RunNow triggers an immediate cleanup enqueue.
func (s *CleanupScheduler) RunNow() {
	go s.enqueueCleanups()
}

// IsRunning returns whether the scheduler is active.
func (s *CleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *CleanupScheduler) enqueueCleanups() {
	if s.taskClient == nil {
		log.Printf("Cleanup scheduler: task queue not available, skipping")
		return
	}

	if _, err := s.taskClient.Add(
		tasks.CleanupAuditEventsTask{RetentionDays: s.cfg.AuditRetentionDays},
	).Save(); err != nil {
		log.Printf("Cleanup scheduler: failed to enqueue audit cleanup: %v", err)
	}

	if _, err := s.taskClient.Add(
		tasks.CleanupNotificationsTask{RetentionDays: s.cfg.NotificationRetentionDays},
	).Save(); err != nil {
		log.Printf("Cleanup scheduler: failed to enqueue notification cleanup: %v", err)
	}
}
