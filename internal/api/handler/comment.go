package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/renatorak20/MyShowListBE/internal/api/models"
	"github.com/renatorak20/MyShowListBE/internal/database"
)

// ListComments returns the comments of the authenticated user with show data
// joined in.
func (h *Handler) ListComments(c *gin.Context) {
	user := currentUser(c)

	comments, err := h.db.GetComments(c.Request.Context(), user.ID)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToComments(comments))
}

// AddComment creates a comment authored by the authenticated user.
func (h *Handler) AddComment(c *gin.Context) {
	user := currentUser(c)

	var req models.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ShowID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "show id not provided"})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	comment := &database.Comment{
		UserID: user.ID,
		ShowID: req.ShowID,
		Text:   req.Text,
	}
	if err := h.db.CreateComment(c.Request.Context(), comment); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.ToComment(comment))
}

// UpdateComment replaces the text of a comment owned by the authenticated
// user.
func (h *Handler) UpdateComment(c *gin.Context) {
	user := currentUser(c)

	var req models.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment id not provided"})
		return
	}

	comment, err := h.db.UpdateComment(c.Request.Context(), req.ID, user.ID, req.Text)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToComment(comment))
}

// DeleteComment removes a comment owned by the authenticated user.
func (h *Handler) DeleteComment(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := h.db.DeleteComment(c.Request.Context(), uint(id), user.ID); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
