package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renatorak20/MyShowListBE/internal/api/models"
	"github.com/renatorak20/MyShowListBE/internal/database"
)

// ListWatchList returns the watch list of the authenticated user with show
// data joined in.
func (h *Handler) ListWatchList(c *gin.Context) {
	user := currentUser(c)

	entries, err := h.db.GetWatchList(c.Request.Context(), user.ID)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToWatchListEntries(entries))
}

// AddWatchListEntry adds a show to the authenticated user's watch list.
func (h *Handler) AddWatchListEntry(c *gin.Context) {
	user := currentUser(c)

	req, ok := bindWatchListRequest(c)
	if !ok {
		return
	}

	entry := &database.WatchListEntry{
		UserID:   user.ID,
		ShowID:   req.ShowID,
		Status:   watchStatusOrDefault(req.Status),
		Progress: req.Progress,
		Score:    req.Score,
	}
	if err := h.db.CreateWatchListEntry(c.Request.Context(), entry); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.ToWatchListEntry(entry))
}

// UpdateWatchListEntry updates status, progress and score of an entry on the
// authenticated user's watch list.
func (h *Handler) UpdateWatchListEntry(c *gin.Context) {
	user := currentUser(c)

	req, ok := bindWatchListRequest(c)
	if !ok {
		return
	}

	entry, err := h.db.UpdateWatchListEntry(c.Request.Context(), user.ID, req.ShowID,
		watchStatusOrDefault(req.Status), req.Progress, req.Score)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToWatchListEntry(entry))
}

// DeleteWatchListEntry removes a show from the authenticated user's watch
// list.
func (h *Handler) DeleteWatchListEntry(c *gin.Context) {
	user := currentUser(c)

	req, ok := bindWatchListRequest(c)
	if !ok {
		return
	}

	if err := h.db.DeleteWatchListEntry(c.Request.Context(), user.ID, req.ShowID); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "show removed from list"})
}

// bindWatchListRequest parses the payload and enforces the presence of the
// show id. It writes the error response itself on failure.
func bindWatchListRequest(c *gin.Context) (*models.WatchListRequest, bool) {
	var req models.WatchListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}
	if req.ShowID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "show id not provided"})
		return nil, false
	}
	if req.Status != "" && !database.WatchStatus(req.Status).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return nil, false
	}
	return &req, true
}

func watchStatusOrDefault(status string) database.WatchStatus {
	if status == "" {
		return database.WatchStatusPlanToWatch
	}
	return database.WatchStatus(status)
}
