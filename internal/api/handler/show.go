package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/renatorak20/MyShowListBE/internal/api/models"
	"github.com/renatorak20/MyShowListBE/internal/database"
)

// ListShows returns the whole catalog.
func (h *Handler) ListShows(c *gin.Context) {
	shows, err := h.db.GetAllShows(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToShows(shows))
}

// GetShow returns a single catalog entry with genres and comments.
func (h *Handler) GetShow(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid show id"})
		return
	}

	show, err := h.db.GetShow(c.Request.Context(), uint(id))
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToShow(show))
}

// CreateShow adds a catalog entry. Admin only.
func (h *Handler) CreateShow(c *gin.Context) {
	var req models.ShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	show, ok := showFromRequest(c, &req)
	if !ok {
		return
	}

	if err := h.db.CreateShow(c.Request.Context(), show, req.Genres); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.ToShow(show))
}

// UpdateShow overwrites a catalog entry, replacing its genre set entirely.
// Admin only.
func (h *Handler) UpdateShow(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid show id"})
		return
	}

	var req models.ShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, ok := showFromRequest(c, &req)
	if !ok {
		return
	}

	show, err := h.db.UpdateShow(c.Request.Context(), uint(id), updated, req.Genres)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToShow(show))
}

// DeleteShow removes a catalog entry; dependent comments and watch-list
// entries go with it. Admin only, idempotent.
func (h *Handler) DeleteShow(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid show id"})
		return
	}

	if err := h.db.DeleteShow(c.Request.Context(), uint(id)); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "show deleted"})
}

// ListGenres returns the genre taxonomy.
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.db.GetAllGenres(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToGenres(genres))
}

// showFromRequest validates the payload and builds the store model. It writes
// the error response itself when validation fails.
func showFromRequest(c *gin.Context, req *models.ShowRequest) (*database.Show, bool) {
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return nil, false
	}
	showType := database.ShowType(req.Type)
	if !showType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid show type"})
		return nil, false
	}

	return &database.Show{
		Title:       req.Title,
		Description: req.Description,
		Type:        showType,
		Episodes:    req.Episodes,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}, true
}
