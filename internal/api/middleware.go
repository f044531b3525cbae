package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireServiceKey guards the admin routes. The key is the privileged
// server-side credential from the environment and is never echoed back.
func RequireServiceKey(serviceKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == token || subtle.ConstantTimeCompare([]byte(token), []byte(serviceKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
			return
		}
		c.Next()
	}
}
