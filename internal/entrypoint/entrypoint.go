package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/associations"
	auditservice "github.com/bookwormapp/bookworm/internal/audit"
	"github.com/bookwormapp/bookworm/internal/config"
	"github.com/bookwormapp/bookworm/internal/database"
	auditrepo "github.com/bookwormapp/bookworm/internal/database/audit"
	booksrepo "github.com/bookwormapp/bookworm/internal/database/books"
	interactionsrepo "github.com/bookwormapp/bookworm/internal/database/interactions"
	likesrepo "github.com/bookwormapp/bookworm/internal/database/likes"
	messagesrepo "github.com/bookwormapp/bookworm/internal/database/messages"
	notificationsrepo "github.com/bookwormapp/bookworm/internal/database/notifications"
	quotesrepo "github.com/bookwormapp/bookworm/internal/database/quotes"
	repostsrepo "github.com/bookwormapp/bookworm/internal/database/reposts"
	reviewsrepo "github.com/bookwormapp/bookworm/internal/database/reviews"
	usersrepo "github.com/bookwormapp/bookworm/internal/database/users"
	http_controllers "github.com/bookwormapp/bookworm/internal/http"
	"github.com/bookwormapp/bookworm/internal/interactions"
	"github.com/bookwormapp/bookworm/internal/scheduler"
	"github.com/bookwormapp/bookworm/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the repositories, services, task queue and scheduler together
// and serves the API.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookworm v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Repositories
	users := usersrepo.NewRepository(db.DB)
	books := booksrepo.NewRepository(db.DB)
	likes := likesrepo.NewRepository(db.DB)
	reposts := repostsrepo.NewRepository(db.DB)
	interactionStore := interactionsrepo.NewRepository(db.DB)
	reviews := reviewsrepo.NewRepository(db.DB)
	quotes := quotesrepo.NewRepository(db.DB)
	messages := messagesrepo.NewRepository(db.DB)
	notifications := notificationsrepo.NewRepository(db.DB)

	// Core services
	resolver := associations.NewResolver(messages, interactionStore, reviews, quotes)
	likeService := associations.NewLikeService(resolver, likes)
	repostService := associations.NewRepostService(resolver, reposts)
	interactionService := interactions.NewService(interactionStore)

	auditService := auditservice.NewService(auditrepo.NewRepository(db.DB))

	// Task queue
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	var cleanupScheduler *scheduler.CleanupScheduler
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewLikeNotificationQueue(likes, likeService, notifications),
			tasks.NewRepostNotificationQueue(reposts, repostService, notifications),
			tasks.NewCleanupAuditEventsQueue(auditService),
			tasks.NewCleanupNotificationsQueue(notifications),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		cleanupScheduler = scheduler.NewCleanupScheduler(taskClient, cfg.Cleanup)
		if err := cleanupScheduler.Start(taskCtx); err != nil {
			log.Printf("WARNING: cleanup scheduler failed to start: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Database:           db,
		Version:            version,
		LikeService:        likeService,
		RepostService:      repostService,
		InteractionService: interactionService,
		UsersStore:         users,
		BooksStore:         books,
		LikesStore:         likes,
		RepostsStore:       reposts,
		CommentsStore:      interactionStore,
		ReviewsStore:       reviews,
		QuotesStore:        quotes,
		MessagesStore:      messages,
		NotificationsStore: notifications,
		AuditService:       auditService,
		TaskClient:         taskClient,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if cleanupScheduler != nil {
			cleanupScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
