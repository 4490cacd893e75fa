package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the session token. Clients may
// send the token as an Authorization bearer instead.
const SessionCookie = "cinerate_session"

const contextUserKey = "auth.userID"

// RequireSession aborts with 401 before the handler runs unless the
// request carries a valid session, and attaches the caller's user id to
// the request context.
func (m *Manager) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := m.Validate(TokenFromRequest(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"kind":    "unauthenticated",
				"message": "authentication required",
			})
			return
		}
		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated caller set by RequireSession, or ""
// on routes outside the gate.
func UserID(c *gin.Context) string {
	return c.GetString(contextUserKey)
}

// TokenFromRequest extracts the session token from the session cookie or
// the Authorization header.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
