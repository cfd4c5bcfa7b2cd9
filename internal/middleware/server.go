package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"campusconnect_backend/internal/logger"
)

// RequestLogger logs each served request through the application logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.HTTPLog(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
