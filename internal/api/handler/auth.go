package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/renatorak20/MyShowListBE/internal/api/models"
	"github.com/renatorak20/MyShowListBE/internal/auth"
	"github.com/renatorak20/MyShowListBE/internal/database"
)

// Login authenticates a user by username and password and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.db.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if storeErrorStatus(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		abortStoreError(c, err)
		return
	}

	if !auth.CheckPassword(user.Password, req.Password, user.Salt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Error("failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  models.ToUser(user),
	})
}

// Register creates a new account. Admin accounts cannot be created here.
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		log.Error("failed to generate salt", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	hash, err := auth.HashPassword(req.Password, salt)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user := &database.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Salt:     salt,
		IsAdmin:  false,
	}
	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		abortStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ToUser(user))
}

// ListUsers returns all accounts.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.db.GetAllUsers(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToUsers(users))
}

// Me returns the identity decoded from the token.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, models.ToUser(currentUser(c)))
}
