package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recipeapi/internal/models"
)

// TokenResolver maps an opaque bearer key to its account.
type TokenResolver interface {
	Resolve(ctx context.Context, key string) (*models.User, error)
}

// Authenticate requires a valid "Authorization: Bearer <key>" header and
// stores the resolved user in the request context. Missing, malformed and
// unknown tokens all produce the same 401.
func Authenticate(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication credentials were not provided"})
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Authorization format"})
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set("userId", user.ID)
		c.Set("isStaff", user.IsStaff)

		c.Next()
	}
}
