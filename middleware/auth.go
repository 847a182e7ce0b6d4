package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 管理操作（清房）要求带上 ADMIN_TOKEN
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "未授权"})
			c.Abort()
			return
		}
		if expected := os.Getenv("ADMIN_TOKEN"); expected != "" && token != expected {
			c.JSON(http.StatusForbidden, gin.H{"error": "口令不正确"})
			c.Abort()
			return
		}
		c.Next()
	}
}
