package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwormapp/bookworm/internal/associations"
	"github.com/bookwormapp/bookworm/internal/database"
	dbinteractions "github.com/bookwormapp/bookworm/internal/database/interactions"
	dbmessages "github.com/bookwormapp/bookworm/internal/database/messages"
	dbquotes "github.com/bookwormapp/bookworm/internal/database/quotes"
	dbreposts "github.com/bookwormapp/bookworm/internal/database/reposts"
	dbreviews "github.com/bookwormapp/bookworm/internal/database/reviews"
	"github.com/bookwormapp/bookworm/internal/entities"
)

func setupRepostsTest(t *testing.T) (*database.Database, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_reposts_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	resolver := associations.NewResolver(
		dbmessages.NewRepository(db.DB),
		dbinteractions.NewRepository(db.DB),
		dbreviews.NewRepository(db.DB),
		dbquotes.NewRepository(db.DB),
	)
	repostsRepo := dbreposts.NewRepository(db.DB)
	service := associations.NewRepostService(resolver, repostsRepo)
	controller := NewRepostsController(service, repostsRepo, nil, nil)

	router := gin.New()
	router.POST("/api/reposts", controller.CreateRepostSave)
	router.PUT("/api/reposts/:id", controller.ModifyRepostSave)
	router.GET("/api/reposts", controller.ListRepostSaves)
	router.DELETE("/api/reposts/:id", controller.DeleteRepostSave)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, router, cleanup
}

func TestRepostsController_CreateRepostSave(t *testing.T) {
	t.Run("creates save targeting a review", func(t *testing.T) {
		db, router, cleanup := setupRepostsTest(t)
		defer cleanup()

		review := seedReview(t, db)

		w := httptest.NewRecorder()
		body := `{"user_id": 2, "kind": "save", "targets": {"review_id": ` + itoa(review.ID) + `}}`
		req, _ := http.NewRequest("POST", "/api/reposts", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created entities.RepostSave
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, entities.RepostKindSave, created.Kind)
		require.NotNil(t, created.ReviewID)
		assert.Equal(t, review.ID, *created.ReviewID)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		db, router, cleanup := setupRepostsTest(t)
		defer cleanup()

		review := seedReview(t, db)

		w := httptest.NewRecorder()
		body := `{"user_id": 2, "kind": "boost", "targets": {"review_id": ` + itoa(review.ID) + `}}`
		req, _ := http.NewRequest("POST", "/api/reposts", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_REPOST_KIND", resp.Code)
	})

	t.Run("rejects ambiguous target", func(t *testing.T) {
		_, router, cleanup := setupRepostsTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		body := `{"user_id": 2, "kind": "repost", "targets": {"review_id": 1, "quote_id": 2}}`
		req, _ := http.NewRequest("POST", "/api/reposts", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "AMBIGUOUS_TARGET", resp.Code)
	})
}

func TestRepostsController_ListRepostSaves(t *testing.T) {
	t.Run("filters by kind", func(t *testing.T) {
		db, router, cleanup := setupRepostsTest(t)
		defer cleanup()

		review := seedReview(t, db)
		require.NoError(t, db.DB.Create(&entities.RepostSave{
			UserID: 2, Kind: entities.RepostKindRepost, ReviewID: &review.ID,
		}).Error)
		require.NoError(t, db.DB.Create(&entities.RepostSave{
			UserID: 2, Kind: entities.RepostKindSave, ReviewID: &review.ID,
		}).Error)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/reposts?user_id=2&kind=save", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data  []entities.RepostSave `json:"data"`
			Total int64                 `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, entities.RepostKindSave, resp.Data[0].Kind)
	})

	t.Run("rejects unknown kind filter", func(t *testing.T) {
		_, router, cleanup := setupRepostsTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/reposts?user_id=2&kind=boost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
