package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireStaff rejects accounts without the staff flag. It must run after
// Authenticate.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("isStaff") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Staff access required"})
			return
		}
		c.Next()
	}
}
