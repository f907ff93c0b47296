package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/memoryscramble/board-engine/applog"
)

const (
	// ContextCorrelationID is the key the correlation id is stored under.
	ContextCorrelationID = "correlationID"
	// ContextPlayerID is the key the caller-supplied player id is stored under.
	ContextPlayerID = "playerID"
	// PlayerIDHeader carries the caller's opaque player identity. The
	// engine never verifies it; anyone claiming a player id acts as
	// that player.
	PlayerIDHeader = "X-Player-ID"
)

// CorrelationID tags every request with a fresh id, reusing one
// supplied by an upstream proxy if present.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Correlation-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextCorrelationID, id)
		c.Header("X-Correlation-ID", id)
		c.Next()
	}
}

// RequestLog logs one line per request via the shared applog logger.
func RequestLog() gin.HandlerFunc {
	logger := applog.New("HTTP", nil)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(requestSummary(c, time.Since(start)))
	}
}

func requestSummary(c *gin.Context, elapsed time.Duration) string {
	id, _ := c.Get(ContextCorrelationID)
	return c.Request.Method + " " + c.Request.URL.Path +
		" status=" + http.StatusText(c.Writer.Status()) +
		" elapsed=" + elapsed.String() +
		" correlation=" + toString(id)
}

func toString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// RequirePlayerID extracts the caller's player id from the request
// header, failing the request with 400 if absent.
func RequirePlayerID(c *gin.Context) (string, bool) {
	id := c.GetHeader(PlayerIDHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + PlayerIDHeader + " header"})
		return "", false
	}
	c.Set(ContextPlayerID, id)
	return id, true
}
