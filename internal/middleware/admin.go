package middleware

import (
	"net/http"
	"strings"

	"cupid/config"
	"cupid/internal/auth"

	"github.com/gin-gonic/gin"
)

// AdminRequired guards admin-only routes with the bearer token issued by
// the admin login endpoint.
func AdminRequired(cfg *config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		if err := auth.ParseAdminToken(cfg, token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Next()
	}
}
