package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// GetComments returns all comments of one user, with the show data joined in.
func (c *Client) GetComments(ctx context.Context, userID uint) ([]Comment, error) {
	var comments []Comment
	if err := c.db.WithContext(ctx).Preload("Show").
		Where("user_id = ?", userID).Find(&comments).Error; err != nil {
		log.Error("failed to get comments", "error", err)
		return nil, err
	}
	return comments, nil
}

// CreateComment persists a new comment.
func (c *Client) CreateComment(ctx context.Context, comment *Comment) error {
	if err := c.db.WithContext(ctx).Create(comment).Error; err != nil {
		log.Error("failed to create comment", "error", err)
		return err
	}
	return nil
}

// UpdateComment replaces the text of a comment. The comment must belong to
// the given user; there is no admin override.
func (c *Client) UpdateComment(ctx context.Context, id, userID uint, text string) (*Comment, error) {
	var comment Comment
	err := c.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		log.Error("failed to get comment", "error", err)
		return nil, err
	}

	if err := c.db.WithContext(ctx).Model(&comment).Update("text", text).Error; err != nil {
		log.Error("failed to update comment", "error", err)
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment owned by the given user.
func (c *Client) DeleteComment(ctx context.Context, id, userID uint) error {
	var comment Comment
	err := c.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		log.Error("failed to get comment", "error", err)
		return err
	}

	if err := c.db.WithContext(ctx).Delete(&comment).Error; err != nil {
		log.Error("failed to delete comment", "error", err)
		return err
	}
	return nil
}
