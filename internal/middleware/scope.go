package middleware

import (
	"github.com/gin-gonic/gin"

	"echonote/internal/model"
)

const (
	scopeKey = "echonote.scope"
	tokenKey = "echonote.token"
)

// SetToken attaches the caller's raw session token to the request, so logout
// can revoke exactly the session it arrived on.
func SetToken(c *gin.Context, token string) {
	c.Set(tokenKey, token)
}

// GetToken returns the session token set by the Auth middleware.
func GetToken(c *gin.Context) string {
	v, ok := c.Get(tokenKey)
	if !ok {
		return ""
	}
	token, _ := v.(string)
	return token
}

// SetScope attaches the authenticated caller's scope to the request.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope set by the Auth middleware. Handlers behind
// Auth can rely on a non-empty UserID.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
