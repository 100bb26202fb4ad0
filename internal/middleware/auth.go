package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"echonote/internal/model"
	"echonote/pkg/response"
)

// cachedSession keeps a verified session in memory so every request does not
// hit the session store. Entries expire with the session itself.
type cachedSession struct {
	session model.Session
}

// Auth requires a valid Bearer session token. On success the caller's scope
// is attached to the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			return
		}

		if cached, ok := m.sessions.Get(token); ok {
			if time.Now().Before(cached.session.ExpiresAt) {
				SetScope(c, model.Scope{UserID: cached.session.UserID})
				SetToken(c, token)
				c.Next()
				return
			}
			m.sessions.Remove(token)
		}

		session, err := m.userUC.VerifySession(c.Request.Context(), token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: session rejected: %v", err)
			response.Unauthorized(c)
			return
		}

		m.sessions.Add(token, cachedSession{session: session})
		SetScope(c, model.Scope{UserID: session.UserID})
		SetToken(c, token)
		c.Next()
	}
}

// Invalidate drops a token from the session cache, for logout.
func (m Middleware) Invalidate(token string) {
	m.sessions.Remove(token)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
