package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Logger writes one line per request, levelled by response status.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		requestLogger := log.With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Float64("latency_ms", float64(time.Since(start).Microseconds())/1000.0).
			Str("ip", c.ClientIP()).
			Logger()

		msg := "HTTP Request"
		if len(c.Errors) > 0 {
			msg = c.Errors.String()
		}

		switch {
		case status >= http.StatusInternalServerError:
			requestLogger.Error().Msg(msg)
		case status >= http.StatusBadRequest:
			requestLogger.Warn().Msg(msg)
		default:
			requestLogger.Info().Msg(msg)
		}
	}
}
