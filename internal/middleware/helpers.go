// internal/middleware/helpers.go
package middleware

import (
	"knowledgepulse-web/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// CurrentUser gets the cached identity loaded by LoadSession, nil when
// signed out
func CurrentUser(c *gin.Context) *session.CachedIdentity {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}

	identity, ok := user.(*session.CachedIdentity)
	if !ok {
		return nil
	}

	return identity
}

// IsSignedIn checks if the request carries a signed-in identity
func IsSignedIn(c *gin.Context) bool {
	return CurrentUser(c) != nil
}
