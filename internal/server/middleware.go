package server

import (
	"net/http"
	"strings"
	"time"

	"auction-exchange/internal/authservice"
	"auction-exchange/utils"

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
		"latency": time.Since(start).String(),
	})
}

// AuthMiddleware verifies the bearer token and stores the caller identity in
// the request context for handlers.
func AuthMiddleware(verifier authservice.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "missing or invalid authorization header",
				"error":   "missing or invalid authorization header",
			})
			return
		}

		caller, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.Warn("AuthMiddleware: token rejected", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "invalid or expired token",
				"error":   err.Error(),
			})
			return
		}

		c.Set(authservice.CallerContextKey, caller)
		c.Next()
	}
}
