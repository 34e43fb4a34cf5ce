package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/webgate/internal/pkg/session"
)

const ContextEmailKey = "user_email"

// Session resolves the session cookie when present and stashes the email in
// the request context. It never rejects: pages render for anonymous visitors
// too, and an expired or tampered cookie just means no user.
func Session(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err == nil && cookie != "" {
			if email, err := mgr.Parse(cookie); err == nil {
				c.Set(ContextEmailKey, email)
			}
		}
		c.Next()
	}
}
