package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-pkg/log"

	"github.com/0xsj/wikilink/internal/port/outbound/cache"
)

// NewAuthMiddleware resolves the bearer session token to a principal.
// Sessions are created by the external OAuth login flow; requests without a
// valid one never reach the core.
func NewAuthMiddleware(sessions cache.SessionStore, logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("authentication required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("authorization header format must be Bearer <token>"))
			return
		}

		principal, err := sessions.Get(c.Request.Context(), parts[1])
		if err != nil {
			logger.Error("session lookup failed", log.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("authentication required"))
			return
		}
		if principal == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("authentication required"))
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// RequestLogger logs each request with method, path, status, and duration.
func RequestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.Any("status", c.Writer.Status()),
			log.String("duration", time.Since(start).String()),
		)
	}
}

// Recovery converts panics into 500 responses instead of dropped
// connections.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			log.String("path", c.Request.URL.Path),
			log.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody("internal server error"))
	})
}
