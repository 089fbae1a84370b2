// Package api wires the HTTP surface of the service.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/renatorak20/MyShowListBE/internal/api/handler"
	"github.com/renatorak20/MyShowListBE/internal/auth"
	"github.com/renatorak20/MyShowListBE/internal/config"
	"github.com/renatorak20/MyShowListBE/internal/database"
)

// Server is the HTTP API server.
type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	db        *database.Client
	tokens    *auth.TokenManager
}

// New creates the API server and sets up all routes.
func New(cfg *config.Config, db *database.Client) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		db:        db,
		tokens:    tokens,
	}
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	h := handler.New(s.db, s.tokens)

	// registration and login are the only routes without a token
	s.ginEngine.POST("/auth", h.Login)
	s.ginEngine.POST("/users", h.Register)

	protected := s.ginEngine.Group("/")
	protected.Use(s.requireAuth())

	protected.GET("/users", h.ListUsers)
	protected.GET("/me", h.Me)
	protected.GET("/genres", h.ListGenres)

	me := protected.Group("/me")
	me.GET("/shows", h.ListWatchList)
	me.POST("/shows", h.AddWatchListEntry)
	me.PUT("/shows", h.UpdateWatchListEntry)
	me.DELETE("/shows", h.DeleteWatchListEntry)
	me.GET("/comments", h.ListComments)
	me.POST("/comments", h.AddComment)
	me.PUT("/comments", h.UpdateComment)
	me.DELETE("/comments/:id", h.DeleteComment)

	shows := protected.Group("/shows")
	shows.GET("", h.ListShows)
	shows.GET("/:id", h.GetShow)

	admin := shows.Group("")
	admin.Use(s.requireAdmin())
	admin.POST("", h.CreateShow)
	admin.PUT("/:id", h.UpdateShow)
	admin.DELETE("/:id", h.DeleteShow)

	s.ginEngine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.ginEngine
}

// Run starts the server on the configured listen address.
func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}
