package server

import (
	"strings"
	"time"

	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"user_id": helpers.CurrentUserID(c),
		"latency": time.Since(start).String(),
	})
}

// CurrentUserMiddleware resolves the caller from the X-User-ID header.
// Requests without it proceed anonymously; operations that need a user reject them.
func CurrentUserMiddleware(c *gin.Context) {
	if id := strings.TrimSpace(c.GetHeader(helpers.UserIDHeader)); id != "" {
		c.Set(helpers.ContextUserKey, id)
	}
	c.Next()
}
