package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"opsboard/internal/constants"
	apierrors "opsboard/internal/errors"
)

// RequireAuth guards action endpoints: an unauthenticated request gets a 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// RequirePageAuth guards server-rendered pages: an unauthenticated visitor is
// redirected to the login page instead of receiving an error body.
func RequirePageAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context.
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func currentUserID(c *gin.Context) string {
	session := sessions.Default(c)
	if id, ok := session.Get(constants.ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}
