// Package handler implements the API endpoint handlers.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renatorak20/MyShowListBE/internal/auth"
	"github.com/renatorak20/MyShowListBE/internal/database"
)

// Handler bundles the dependencies of the endpoint handlers.
type Handler struct {
	db     *database.Client
	tokens *auth.TokenManager
}

// New creates a new handler.
func New(db *database.Client, tokens *auth.TokenManager) *Handler {
	return &Handler{
		db:     db,
		tokens: tokens,
	}
}

// currentUser returns the identity attached by the auth middleware.
func currentUser(c *gin.Context) *database.User {
	return c.MustGet("user").(*database.User)
}

// storeErrorStatus maps store error kinds to HTTP status codes. Validation
// and conflict failures are client errors, unknown records are 404, anything
// else is an unexpected persistence failure.
func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, database.ErrValidation), errors.Is(err, database.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// abortStoreError writes the JSON error response for a store failure.
func abortStoreError(c *gin.Context, err error) {
	status := storeErrorStatus(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
