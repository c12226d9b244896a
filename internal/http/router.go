package http

import (
	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/associations"
	"github.com/bookwormapp/bookworm/internal/audit"
	"github.com/bookwormapp/bookworm/internal/database"
	"github.com/bookwormapp/bookworm/internal/interactions"
	"github.com/bookwormapp/bookworm/internal/tasks"
)

// RouterConfig receives all dependencies for route registration.
type RouterConfig struct {
	Database *database.Database
	Version  string

	LikeService        *associations.LikeService
	RepostService      *associations.RepostService
	InteractionService *interactions.Service
	UsersStore         UsersStore
	BooksStore         BooksStore
	LikesStore         LikesStore
	RepostsStore       RepostsStore
	CommentsStore      InteractionCommentsStore
	ReviewsStore       ReviewsStore
	QuotesStore        QuotesStore
	MessagesStore      MessagesStore
	NotificationsStore NotificationsStore
	AuditService       *audit.Service
	TaskClient         *tasks.Client
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	users := NewUsersController(cfg.UsersStore)
	router.POST("/api/users", users.CreateUser)
	router.GET("/api/users/:id", users.GetUser)
	router.GET("/api/users", users.LookupUser)

	books := NewBooksController(cfg.BooksStore)
	router.POST("/api/books", books.CreateBook)
	router.GET("/api/books/:id", books.GetBook)
	router.GET("/api/books", books.ListBooks)

	likes := NewLikesController(cfg.LikeService, cfg.LikesStore, cfg.TaskClient, cfg.AuditService)
	router.POST("/api/likes", likes.CreateLike)
	router.PUT("/api/likes/:id", likes.ModifyLike)
	router.GET("/api/likes", likes.ListLikes)
	router.DELETE("/api/likes/:id", likes.DeleteLike)

	reposts := NewRepostsController(cfg.RepostService, cfg.RepostsStore, cfg.TaskClient, cfg.AuditService)
	router.POST("/api/reposts", reposts.CreateRepostSave)
	router.PUT("/api/reposts/:id", reposts.ModifyRepostSave)
	router.GET("/api/reposts", reposts.ListRepostSaves)
	router.DELETE("/api/reposts/:id", reposts.DeleteRepostSave)

	interactionsCtl := NewInteractionsController(cfg.InteractionService, cfg.CommentsStore, cfg.AuditService)
	router.PUT("/api/books/:id/interaction", interactionsCtl.UpsertInteraction)
	router.GET("/api/books/:id/interaction", interactionsCtl.GetInteraction)
	router.POST("/api/interactions/:id/comments", interactionsCtl.CreateComment)
	router.GET("/api/interactions/:id/comments", interactionsCtl.ListComments)

	reviews := NewReviewsController(cfg.ReviewsStore)
	router.POST("/api/reviews", reviews.CreateReview)
	router.GET("/api/reviews/:id", reviews.GetReview)
	router.GET("/api/books/:id/reviews", reviews.ListReviewsByBook)
	router.DELETE("/api/reviews/:id", reviews.DeleteReview)

	quotes := NewQuotesController(cfg.QuotesStore)
	router.POST("/api/quotes", quotes.CreateQuote)
	router.GET("/api/quotes/:id", quotes.GetQuote)
	router.GET("/api/books/:id/quotes", quotes.ListQuotesByBook)
	router.DELETE("/api/quotes/:id", quotes.DeleteQuote)

	messages := NewMessagesController(cfg.MessagesStore)
	router.POST("/api/messages", messages.CreateMessage)
	router.GET("/api/messages/:id", messages.GetMessage)
	router.GET("/api/messages", messages.ListConversation)
	router.DELETE("/api/messages/:id", messages.DeleteMessage)

	notifications := NewNotificationsController(cfg.NotificationsStore)
	router.GET("/api/notifications", notifications.ListNotifications)
	router.POST("/api/notifications/:id/read", notifications.MarkNotificationRead)

	return router
}
