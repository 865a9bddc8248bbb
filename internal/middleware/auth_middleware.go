// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"knowledgepulse-web/internal/api"
	"knowledgepulse-web/internal/config"
	"knowledgepulse-web/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type AuthMiddleware struct {
	sessions *session.Service
	cfg      config.AppConfig
}

func NewAuthMiddleware(sessions *session.Service, cfg config.AppConfig) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		cfg:      cfg,
	}
}

// LoadSession resolves the session cookie (minting one for first-time
// visitors), threads the sid and any cached bearer token through the request
// context, and exposes the cached identity to templates. It never blocks a
// request; gating is done by RequireAuth and RequireAdmin.
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(m.cfg.SessionCookie)
		if err != nil || sid == "" {
			sid = ulid.Make().String()
			c.SetCookie(m.cfg.SessionCookie, sid, int(m.cfg.SessionTTL.Seconds()), "/", "", m.cfg.CookieSecure, true)
		}

		ctx := session.WithSID(c.Request.Context(), sid)
		if token := m.sessions.Token(ctx); token != "" {
			ctx = api.WithToken(ctx, token)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Set("sid", sid)
		if user := m.sessions.CurrentUser(ctx); user != nil {
			c.Set("user", user)
		}

		c.Next()
	}
}

// RequireAuth redirects signed-out visitors to the sign-in view.
// MUST be used after LoadSession()
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.sessions.IsAuthenticated(c.Request.Context()) {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin redirects signed-in non-admins to the home view.
// MUST be used after RequireAuth()
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.sessions.IsAdmin(c.Request.Context()) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly is a convenience chain for admin routes. The authentication
// check runs first, so a signed-out visitor lands on sign-in rather than
// being bounced home.
func (m *AuthMiddleware) AdminOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		m.RequireAuth(),
		m.RequireAdmin(),
	}
}
