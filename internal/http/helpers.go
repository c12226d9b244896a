package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/associations"
	"github.com/bookwormapp/bookworm/internal/interactions"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (populated slots, etc.)
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// PaginatedResponse wraps paginated data with metadata.
type PaginatedResponse struct {
	Data    any   `json:"data"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondDomainError maps the association/interaction error taxonomy onto
// HTTP responses. Validation failures and storage-surfaced conflicts land in
// the same buckets, so clients cannot tell which layer caught them.
func respondDomainError(c *gin.Context, err error, context string) {
	var ambiguous *associations.AmbiguousTargetError
	var notFound *associations.TargetNotFoundError

	switch {
	case errors.Is(err, associations.ErrNoTargetSpecified):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "NO_TARGET_SPECIFIED",
		})
	case errors.As(err, &ambiguous):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   ambiguous.Error(),
			Code:    "AMBIGUOUS_TARGET",
			Details: gin.H{"populated_slots": ambiguous.Slots},
		})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   notFound.Error(),
			Code:    "TARGET_NOT_FOUND",
			Details: gin.H{"slot": notFound.Slot, "id": notFound.ID},
		})
	case errors.Is(err, associations.ErrAssociationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: err.Error(),
			Code:  "ASSOCIATION_NOT_FOUND",
		})
	case errors.Is(err, associations.ErrInvalidRepostKind):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_REPOST_KIND",
		})
	case errors.Is(err, interactions.ErrLikedWithoutRead):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "LIKED_WITHOUT_READ",
		})
	case errors.Is(err, interactions.ErrInteractionRequiresReading):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "INTERACTION_REQUIRES_READING",
		})
	case errors.Is(err, associations.ErrDuplicateAssociation):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: err.Error(),
			Code:  "DUPLICATE_ASSOCIATION",
		})
	case errors.Is(err, associations.ErrPersistenceUnavailable):
		log.Printf("Persistence unavailable (%s): %v", context, err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "storage temporarily unavailable",
			Code:  "PERSISTENCE_UNAVAILABLE",
		})
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing Helpers ---

// parseIDParam parses a uint path parameter, responding with 400 on failure.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// parseQueryID parses a required uint query parameter, responding with 400
// when missing or malformed.
func parseQueryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		respondBadRequest(c, name+" query parameter is required")
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// parsePagination extracts limit/offset query parameters with defaults.
func parsePagination(c *gin.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}
