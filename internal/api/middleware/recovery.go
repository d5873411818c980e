package middleware

import (
	"net/http"

	"postl-admin-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 JSON response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
