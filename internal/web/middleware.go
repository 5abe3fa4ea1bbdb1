package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yetobasi/homepage/internal/analytics"
)

const requestIDHeader = "X-Request-ID"

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		case strings.HasPrefix(c.Request.URL.Path, "/static/"), strings.HasPrefix(c.Request.URL.Path, "/images/"):
			level = slog.LevelDebug
		}
		log.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"request_id", c.GetString("request_id"),
		)
	}
}

// Only page views count as visits; fragments, assets and the admin area
// are skipped.
var untrackedPrefixes = []string{
	"/static/", "/images/", "/admin", "/favicon", "/privacy",
	"/healthz", "/photos/", "/nav/", "/projects",
}

func tracked(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(r.URL.Path, p) {
			return false
		}
	}
	return true
}

// visitorTracking records page views with a hashed client IP, honouring
// Do Not Track. Writes happen off the request path.
func visitorTracking(store *analytics.Store, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tracked(c.Request) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		v := analytics.Visit{
			HashedIP:  store.HashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.RecordVisit(ctx, v); err != nil {
				log.Warn("recording visit", "error", err)
			}
		}()
		c.Next()
	}
}
