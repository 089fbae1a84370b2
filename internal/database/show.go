package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetAllShows returns the whole catalog including genre associations.
func (c *Client) GetAllShows(ctx context.Context) ([]Show, error) {
	var shows []Show
	if err := c.db.WithContext(ctx).Preload("Genres").Find(&shows).Error; err != nil {
		log.Error("failed to get all shows", "error", err)
		return nil, err
	}
	return shows, nil
}

// GetShow returns a single show with its genres and comments.
func (c *Client) GetShow(ctx context.Context, id uint) (*Show, error) {
	var show Show
	if err := c.db.WithContext(ctx).Preload("Genres").Preload("Comments").First(&show, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("show %d: %w", id, ErrNotFound)
		}
		log.Error("failed to get show", "error", err)
		return nil, err
	}
	return &show, nil
}

// CreateShow persists a show and its genre associations atomically. The genre
// names must exist in the taxonomy; a duplicate title is ErrConflict.
func (c *Client) CreateShow(ctx context.Context, show *Show, genreNames []string) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres, err := getGenresByName(tx, genreNames)
		if err != nil {
			return err
		}
		show.Genres = genres

		if err := tx.Create(show).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("show title %q already taken: %w", show.Title, ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrValidation) && !errors.Is(err, ErrConflict) {
		log.Error("failed to create show", "error", err)
	}
	return err
}

// UpdateShow overwrites the show's fields and replaces its entire genre
// association set with the supplied one.
func (c *Client) UpdateShow(ctx context.Context, id uint, updated *Show, genreNames []string) (*Show, error) {
	var show Show
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&show, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("show %d: %w", id, ErrNotFound)
			}
			return err
		}

		genres, err := getGenresByName(tx, genreNames)
		if err != nil {
			return err
		}

		show.Title = updated.Title
		show.Description = updated.Description
		show.Type = updated.Type
		show.Episodes = updated.Episodes
		show.StartDate = updated.StartDate
		show.EndDate = updated.EndDate

		if err := tx.Save(&show).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("show title %q already taken: %w", show.Title, ErrConflict)
			}
			return err
		}
		if err := tx.Model(&show).Association("Genres").Replace(&genres); err != nil {
			return err
		}
		show.Genres = genres
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrValidation) && !errors.Is(err, ErrConflict) {
			log.Error("failed to update show", "error", err)
		}
		return nil, err
	}
	return &show, nil
}

// DeleteShow removes a show together with its genre associations, comments
// and watch-list entries. Deleting a missing show is not an error.
func (c *Client) DeleteShow(ctx context.Context, id uint) error {
	err := c.db.WithContext(ctx).Select(clause.Associations).Delete(&Show{ID: id}).Error
	if err != nil {
		log.Error("failed to delete show", "error", err)
		return err
	}
	return nil
}
