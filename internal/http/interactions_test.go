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

	"github.com/bookwormapp/bookworm/internal/database"
	dbinteractions "github.com/bookwormapp/bookworm/internal/database/interactions"
	"github.com/bookwormapp/bookworm/internal/entities"
	"github.com/bookwormapp/bookworm/internal/interactions"
)

func setupInteractionsTest(t *testing.T) (*database.Database, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_interactions_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := dbinteractions.NewRepository(db.DB)
	controller := NewInteractionsController(interactions.NewService(repo), repo, nil)

	router := gin.New()
	router.PUT("/api/books/:id/interaction", controller.UpsertInteraction)
	router.GET("/api/books/:id/interaction", controller.GetInteraction)
	router.POST("/api/interactions/:id/comments", controller.CreateComment)
	router.GET("/api/interactions/:id/comments", controller.ListComments)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, router, cleanup
}

func putInteraction(router *gin.Engine, bookID uint, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/books/"+itoa(bookID)+"/interaction", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestInteractionsController_UpsertInteraction(t *testing.T) {
	t.Run("creates read interaction", func(t *testing.T) {
		_, router, cleanup := setupInteractionsTest(t)
		defer cleanup()

		w := putInteraction(router, 1, `{"user_id": 2, "read": true, "description": "good"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var interaction entities.BookInteraction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &interaction))
		assert.True(t, interaction.Read)
		assert.False(t, interaction.Liked)
		assert.Equal(t, "good", interaction.Description)
	})

	t.Run("rejects liked without read", func(t *testing.T) {
		_, router, cleanup := setupInteractionsTest(t)
		defer cleanup()

		w := putInteraction(router, 1, `{"user_id": 2, "read": false, "liked": true}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "LIKED_WITHOUT_READ", resp.Code)
	})

	t.Run("rejects unread create", func(t *testing.T) {
		_, router, cleanup := setupInteractionsTest(t)
		defer cleanup()

		w := putInteraction(router, 1, `{"user_id": 2, "read": false}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INTERACTION_REQUIRES_READING", resp.Code)
	})

	t.Run("unliking keeps read state", func(t *testing.T) {
		_, router, cleanup := setupInteractionsTest(t)
		defer cleanup()

		w := putInteraction(router, 1, `{"user_id": 2, "read": true, "liked": true}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = putInteraction(router, 1, `{"user_id": 2, "read": true, "liked": false}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var interaction entities.BookInteraction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &interaction))
		assert.True(t, interaction.Read)
		assert.False(t, interaction.Liked)
	})

	t.Run("un-reading deletes the interaction and responds 204", func(t *testing.T) {
		db, router, cleanup := setupInteractionsTest(t)
		defer cleanup()

		w := putInteraction(router, 1, `{"user_id": 2, "read": true, "liked": true}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = putInteraction(router, 1, `{"user_id": 2, "read": false}`)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())

		var count int64
		db.DB.Model(&entities.BookInteraction{}).Count(&count)
		assert.Zero(t, count)
	})
}

func TestInteractionsController_GetInteraction(t *testing.T) {
	t.Run("returns existing interaction", func(t *testing.T) {
		_, router, cleanup := setupInteractionsTest(t)
		defer cleanup()

		w := putInteraction(router, 1, `{"user_id": 2, "read": true}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/1/interaction?user_id=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns 404 when absent", func(t *testing.T) {
		_, router, cleanup := setupInteractionsTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/1/interaction?user_id=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestInteractionsController_Comments(t *testing.T) {
	t.Run("creates and lists comments", func(t *testing.T) {
		db, router, cleanup := setupInteractionsTest(t)
		defer cleanup()

		w := putInteraction(router, 1, `{"user_id": 2, "read": true}`)
		require.Equal(t, http.StatusOK, w.Code)

		var interaction entities.BookInteraction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &interaction))

		w = httptest.NewRecorder()
		body := `{"user_id": 3, "text": "loved this one too"}`
		req, _ := http.NewRequest("POST", "/api/interactions/"+itoa(interaction.ID)+"/comments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/api/interactions/"+itoa(interaction.ID)+"/comments", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var comments []entities.InteractionComment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
		require.Len(t, comments, 1)
		assert.Equal(t, "loved this one too", comments[0].Text)

		var count int64
		db.DB.Model(&entities.InteractionComment{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects comment on unknown interaction", func(t *testing.T) {
		_, router, cleanup := setupInteractionsTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		body := `{"user_id": 3, "text": "hello"}`
		req, _ := http.NewRequest("POST", "/api/interactions/999/comments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
