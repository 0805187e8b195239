package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"meetingrooms/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request and recovers from panics.
// Errors attached with c.Error are logged with the request.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				requestEntry(log, c, start).
					WithField("stack", string(debug.Stack())).
					Errorf("panic: %v", recovered)

				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
				c.Abort()
				return
			}

			entry := requestEntry(log, c, start)
			status := c.Writer.Status()

			switch {
			case len(c.Errors) > 0:
				for _, err := range c.Errors {
					e := entry.WithField("error_type", fmt.Sprintf("%v", err.Type))
					if err.Meta != nil {
						e = e.WithField("meta", err.Meta)
					}
					e.Error(err.Error())
				}
			case status >= http.StatusInternalServerError:
				entry.Error("request failed")
			case status >= http.StatusBadRequest:
				entry.Warn("request rejected")
			default:
				entry.Info("request")
			}
		}()

		c.Next()
	}
}

func requestEntry(log *logrus.Logger, c *gin.Context, start time.Time) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"status":     c.Writer.Status(),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"query":      c.Request.URL.RawQuery,
		"client_ip":  c.ClientIP(),
		"user_id":    c.GetString("user_id"),
		"role":       c.GetString("role"),
		"request_id": requestID(c),
		"latency":    time.Since(start).String(),
	})
}

func requestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.GetHeader("X-Request-Id")
	}
	return requestID
}
