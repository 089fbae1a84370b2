package database

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// genreNames is the fixed genre taxonomy. Order matters: each genre's ID is
// pinned to its 1-based position in this list.
var genreNames = []string{
	"ACTION",
	"ADVENTURE",
	"AVANT_GARDE",
	"AWARD_WINNING",
	"COMEDY",
	"DRAMA",
	"FANTASY",
	"GOURMET",
	"HORROR",
	"MYSTERY",
	"ROMANCE",
	"SCI_FI",
	"SLICE_OF_LIFE",
	"SPORTS",
	"SUPERNATURAL",
	"SUSPENSE",
}

// Taxonomy returns the code-defined genre set with pinned IDs.
func Taxonomy() []Genre {
	return lo.Map(genreNames, func(name string, i int) Genre {
		return Genre{ID: uint(i + 1), Name: name}
	})
}

// SyncGenres makes the persisted genre set match the code-defined taxonomy.
// If every taxonomy entry already has a row with matching id and name, it is a
// no-op. Otherwise the whole table is cleared and reinserted in one
// transaction. It runs once at startup, before the server accepts requests.
func (c *Client) SyncGenres(ctx context.Context) error {
	want := Taxonomy()

	var have []Genre
	if err := c.db.WithContext(ctx).Find(&have).Error; err != nil {
		return fmt.Errorf("failed to load genres: %w", err)
	}

	inSync := lo.EveryBy(want, func(g Genre) bool {
		return lo.SomeBy(have, func(h Genre) bool {
			return h.ID == g.ID && h.Name == g.Name
		})
	})
	if inSync {
		log.Debug("genres already in sync")
		return nil
	}

	log.Info("syncing genres", "have", len(have), "want", len(want))

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Genre{}).Error; err != nil {
			return fmt.Errorf("failed to clear genres: %w", err)
		}
		if err := tx.Create(&want).Error; err != nil {
			return fmt.Errorf("failed to insert genres: %w", err)
		}
		return nil
	})
}

// GetAllGenres returns all persisted genres.
func (c *Client) GetAllGenres(ctx context.Context) ([]Genre, error) {
	var genres []Genre
	if err := c.db.WithContext(ctx).Order("id").Find(&genres).Error; err != nil {
		log.Error("failed to get genres", "error", err)
		return nil, err
	}
	return genres, nil
}

// getGenresByName resolves genre names against the persisted taxonomy.
// Unknown names are a validation failure.
func getGenresByName(tx *gorm.DB, names []string) ([]Genre, error) {
	if len(names) == 0 {
		return []Genre{}, nil
	}

	var genres []Genre
	if err := tx.Where("name IN ?", names).Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve genres: %w", err)
	}

	for _, name := range names {
		if !lo.SomeBy(genres, func(g Genre) bool { return g.Name == name }) {
			return nil, fmt.Errorf("unknown genre %q: %w", name, ErrValidation)
		}
	}
	return genres, nil
}
