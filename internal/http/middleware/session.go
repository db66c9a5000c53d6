package middleware

import (
	"net/http"
	"strings"

	"highwaybus/internal/services"
	"highwaybus/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "search_session"

// SessionRequired resolves the session token from "Authorization: Bearer" or
// X-Session-Token and aborts with 401 when it is missing, invalid or expired.
func SessionRequired(store *session.Store, issuer session.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Session-Token")
		if auth := c.GetHeader("Authorization"); raw == "" && strings.HasPrefix(auth, "Bearer ") {
			raw = strings.TrimPrefix(auth, "Bearer ")
		}

		id, err := issuer.Parse(raw)
		if err != nil {
			abortUnauthorized(c, "session token missing or invalid")
			return
		}
		sess, ok := store.Get(id)
		if !ok {
			abortUnauthorized(c, "session expired")
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSession returns the session attached by SessionRequired.
func GetSession(c *gin.Context) *services.SearchSession {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*services.SearchSession); ok {
			return s
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      message,
		"code":       "unauthorized",
		"message":    message,
		"request_id": GetRequestID(c),
	})
}
