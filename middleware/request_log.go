package middleware

import (
	"log"
	"time"

	"plumber-backend/logger"
	"plumber-backend/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Credential-bearing routes whose bodies must never reach the logs table.
var redactedPaths = map[string]bool{
	"/api/auth/login":    true,
	"/api/auth/register": true,
}

// loggableBody returns the request body safe to persist for a path.
func loggableBody(path string, body []byte) string {
	if redactedPaths[path] {
		return "[redacted]"
	}
	return string(body)
}

// RequestLogger tags every request with an id, times it, warns on slow
// ones, and pushes a log entry to the async DB logger.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		latency := time.Since(start)
		log.Printf("[PERF] %s %s %s | Status: %d | Time: %v",
			requestID, c.Method(), c.Path(), c.Response().StatusCode(), latency)

		if latency > 200*time.Millisecond {
			log.Printf("🐌 SLOW REQUEST: %s %s took %v", c.Method(), c.Path(), latency)
		}

		asyncLogger.Log(types.LogEntry{
			RequestID:       requestID,
			Method:          c.Method(),
			URL:             c.OriginalURL(),
			RequestBody:     loggableBody(c.Path(), c.Body()),
			ResponseBody:    string(c.Response().Body()),
			RequestHeaders:  c.Request().Header.String(),
			ResponseHeaders: c.Response().Header.String(),
			StatusCode:      c.Response().StatusCode(),
			CreatedAt:       time.Now(),
		})

		return err
	}
}
