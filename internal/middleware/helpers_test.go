package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"knowledgepulse-web/internal/pkg/session"
)

func TestCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, CurrentUser(c))
	assert.False(t, IsSignedIn(c))

	c.Set("user", &session.CachedIdentity{Email: "jane@example.com", Role: "student"})
	user := CurrentUser(c)
	assert.NotNil(t, user)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.True(t, IsSignedIn(c))
}

func TestCurrentUserIgnoresWrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Set("user", "not-an-identity")
	assert.Nil(t, CurrentUser(c))
	assert.False(t, IsSignedIn(c))
}
