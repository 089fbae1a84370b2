// Package models defines the wire types of the API.
package models

import "time"

// User is the account representation sent to clients. Credentials never
// appear here.
type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Genre is a taxonomy entry.
type Genre struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Show is a catalog entry with its genre associations.
type Show struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Episodes    int        `json:"episodes"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Genres      []Genre    `json:"genres"`
	Comments    []Comment  `json:"comments,omitempty"`
}

// WatchListEntry is a per-user progress record, optionally with the show
// joined in.
type WatchListEntry struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	ShowID    uint      `json:"showId"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Show      *Show     `json:"show,omitempty"`
}

// Comment is a free-text annotation, optionally with the show joined in.
type Comment struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	ShowID    uint      `json:"showId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Show      *Show     `json:"show,omitempty"`
}

// LoginRequest is the credential payload of POST /auth.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest is the payload of POST /users.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ShowRequest is the payload of catalog writes. Genres carries the full
// association set by name; on update it replaces the existing set entirely.
type ShowRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Episodes    int        `json:"episodes"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Genres      []string   `json:"genres"`
}

// WatchListRequest is the payload of watch-list writes. The acting account is
// always taken from the token, never from the payload.
type WatchListRequest struct {
	ShowID   uint   `json:"showId"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Score    int    `json:"score"`
}

// CommentCreateRequest is the payload of POST /me/comments.
type CommentCreateRequest struct {
	ShowID uint   `json:"showId"`
	Text   string `json:"text"`
}

// CommentUpdateRequest is the payload of PUT /me/comments.
type CommentUpdateRequest struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}
