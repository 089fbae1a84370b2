package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renatorak20/MyShowListBE/internal/database"
)

// userKey is the gin context key the authenticated account is stored under.
const userKey = "user"

// requireAuth validates the bearer token and attaches the decoded identity.
// The token is expected as the raw Authorization header value, without a
// scheme prefix. Requests without a valid token are rejected with 403.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no token"})
			return
		}

		claims, err := s.tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "wrong token"})
			return
		}

		c.Set(userKey, &claims.User)
	}
}

// requireAdmin rejects requests whose identity lacks the admin flag. It must
// run after requireAuth.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.MustGet(userKey).(*database.User)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not an admin"})
			return
		}
		c.Next()
	}
}
