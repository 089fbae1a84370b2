package models

import (
	"github.com/samber/lo"

	"github.com/renatorak20/MyShowListBE/internal/database"
)

// ToUser converts a database.User to its wire representation, dropping the
// credential fields.
func ToUser(u *database.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUsers converts a slice of database users.
func ToUsers(users []database.User) []User {
	return lo.Map(users, func(u database.User, _ int) User {
		return ToUser(&u)
	})
}

// ToGenre converts a database.Genre.
func ToGenre(g database.Genre) Genre {
	return Genre{ID: g.ID, Name: g.Name}
}

// ToGenres converts a slice of database genres.
func ToGenres(genres []database.Genre) []Genre {
	return lo.Map(genres, func(g database.Genre, _ int) Genre {
		return ToGenre(g)
	})
}

// ToShow converts a database.Show including its associations.
func ToShow(s *database.Show) Show {
	show := Show{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Type:        string(s.Type),
		Episodes:    s.Episodes,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Genres:      ToGenres(s.Genres),
	}
	if len(s.Comments) > 0 {
		show.Comments = ToComments(s.Comments)
	}
	return show
}

// ToShows converts a slice of database shows.
func ToShows(shows []database.Show) []Show {
	return lo.Map(shows, func(s database.Show, _ int) Show {
		return ToShow(&s)
	})
}

// ToWatchListEntry converts a database.WatchListEntry.
func ToWatchListEntry(e *database.WatchListEntry) WatchListEntry {
	entry := WatchListEntry{
		ID:        e.ID,
		UserID:    e.UserID,
		ShowID:    e.ShowID,
		Status:    string(e.Status),
		Progress:  e.Progress,
		Score:     e.Score,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Show != nil {
		show := ToShow(e.Show)
		entry.Show = &show
	}
	return entry
}

// ToWatchListEntries converts a slice of database watch-list entries.
func ToWatchListEntries(entries []database.WatchListEntry) []WatchListEntry {
	return lo.Map(entries, func(e database.WatchListEntry, _ int) WatchListEntry {
		return ToWatchListEntry(&e)
	})
}

// ToComment converts a database.Comment.
func ToComment(c *database.Comment) Comment {
	comment := Comment{
		ID:        c.ID,
		UserID:    c.UserID,
		ShowID:    c.ShowID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Show != nil {
		show := ToShow(c.Show)
		comment.Show = &show
	}
	return comment
}

// ToComments converts a slice of database comments.
func ToComments(comments []database.Comment) []Comment {
	return lo.Map(comments, func(c database.Comment, _ int) Comment {
		return ToComment(&c)
	})
}
