package database

import (
	"time"
)

// ShowType represents the kind of catalog entry, either a TV series or a movie.
type ShowType string

const (
	// ShowTypeTVSeries represents TV series.
	ShowTypeTVSeries ShowType = "TV_SERIES"
	// ShowTypeMovie represents movies.
	ShowTypeMovie ShowType = "MOVIE"
)

// Valid reports whether t is a known show type.
func (t ShowType) Valid() bool {
	switch t {
	case ShowTypeTVSeries, ShowTypeMovie:
		return true
	}
	return false
}

// WatchStatus represents the state of a show on a user's watch list.
type WatchStatus string

const (
	WatchStatusWatching    WatchStatus = "WATCHING"
	WatchStatusCompleted   WatchStatus = "COMPLETED"
	WatchStatusOnHold      WatchStatus = "ON_HOLD"
	WatchStatusDropped     WatchStatus = "DROPPED"
	WatchStatusPlanToWatch WatchStatus = "PLAN_TO_WATCH"
)

// Valid reports whether s is a known watch status.
func (s WatchStatus) Valid() bool {
	switch s {
	case WatchStatusWatching, WatchStatusCompleted, WatchStatusOnHold,
		WatchStatusDropped, WatchStatusPlanToWatch:
		return true
	}
	return false
}

// User represents an account in the database.
// The password hash and salt are never serialized, neither into API responses
// nor into the token claims.
type User struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	IsAdmin   bool   `gorm:"default:false" json:"isAdmin"`
	Password  string `gorm:"not null" json:"-"`
	Salt      string `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	WatchListEntries []WatchListEntry `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Comments         []Comment        `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

// Show represents a catalog entry.
type Show struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"uniqueIndex;not null" json:"title"`
	Description string     `json:"description"`
	Type        ShowType   `json:"type"`
	Episodes    int        `json:"episodes"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Genres           []Genre          `gorm:"many2many:show_genres;" json:"genres"`
	Comments         []Comment        `gorm:"constraint:OnDelete:CASCADE;" json:"comments,omitempty"`
	WatchListEntries []WatchListEntry `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

// Genre is a fixed-vocabulary tag. The rows are owned entirely by SyncGenres,
// which pins each ID to the position of the name in the code-defined taxonomy.
type Genre struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// WatchListEntry tracks the progress of one user on one show. The composite
// unique index on (user_id, show_id) is the actual uniqueness guarantee; the
// application-level existence check only produces a friendlier error.
type WatchListEntry struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	UserID    uint        `gorm:"not null;uniqueIndex:idx_watch_list_user_show" json:"userId"`
	ShowID    uint        `gorm:"not null;uniqueIndex:idx_watch_list_user_show" json:"showId"`
	Status    WatchStatus `gorm:"default:PLAN_TO_WATCH" json:"status"`
	Progress  int         `gorm:"default:0" json:"progress"`
	Score     int         `gorm:"default:0" json:"score"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`

	Show *Show `json:"show,omitempty"`
}

// Comment is a free-text annotation by one user about one show.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	ShowID    uint      `gorm:"not null;index" json:"showId"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Show *Show `json:"show,omitempty"`
}
