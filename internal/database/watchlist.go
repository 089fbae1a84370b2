package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// GetWatchList returns all watch-list entries of one user, with the show data
// joined in.
func (c *Client) GetWatchList(ctx context.Context, userID uint) ([]WatchListEntry, error) {
	var entries []WatchListEntry
	if err := c.db.WithContext(ctx).Preload("Show").Preload("Show.Genres").
		Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		log.Error("failed to get watch list", "error", err)
		return nil, err
	}
	return entries, nil
}

// CreateWatchListEntry adds a show to a user's watch list. At most one entry
// may exist per (user, show) pair. The lookup below is only a fast path for a
// clean error message; the unique index closes the race between concurrent
// creates, and a duplicate-key failure on insert reports the same conflict.
func (c *Client) CreateWatchListEntry(ctx context.Context, entry *WatchListEntry) error {
	var existing WatchListEntry
	err := c.db.WithContext(ctx).
		Where("user_id = ? AND show_id = ?", entry.UserID, entry.ShowID).
		First(&existing).Error
	if err == nil {
		return fmt.Errorf("show %d already on the list: %w", entry.ShowID, ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("failed to check watch list entry", "error", err)
		return err
	}

	if err := c.db.WithContext(ctx).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("show %d already on the list: %w", entry.ShowID, ErrConflict)
		}
		log.Error("failed to create watch list entry", "error", err)
		return err
	}
	return nil
}

// UpdateWatchListEntry overwrites status, progress and score of the entry for
// the given (user, show) pair.
func (c *Client) UpdateWatchListEntry(ctx context.Context, userID, showID uint, status WatchStatus, progress, score int) (*WatchListEntry, error) {
	var entry WatchListEntry
	err := c.db.WithContext(ctx).
		Where("user_id = ? AND show_id = ?", userID, showID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("show %d not on the list: %w", showID, ErrNotFound)
		}
		log.Error("failed to get watch list entry", "error", err)
		return nil, err
	}

	updates := map[string]any{
		"status":   status,
		"progress": progress,
		"score":    score,
	}
	if err := c.db.WithContext(ctx).Model(&entry).Updates(updates).Error; err != nil {
		log.Error("failed to update watch list entry", "error", err)
		return nil, err
	}
	return &entry, nil
}

// DeleteWatchListEntry removes the entry for the given (user, show) pair.
func (c *Client) DeleteWatchListEntry(ctx context.Context, userID, showID uint) error {
	var entry WatchListEntry
	err := c.db.WithContext(ctx).
		Where("user_id = ? AND show_id = ?", userID, showID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("show %d not on the list: %w", showID, ErrNotFound)
		}
		log.Error("failed to get watch list entry", "error", err)
		return err
	}

	if err := c.db.WithContext(ctx).Delete(&entry).Error; err != nil {
		log.Error("failed to delete watch list entry", "error", err)
		return err
	}
	return nil
}
