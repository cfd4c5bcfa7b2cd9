package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusconnect_backend/internal/models"
	"campusconnect_backend/internal/session"
)

const (
	ContextRole       = "role"
	ContextIdentityID = "identityID"
)

// RequireSession rejects requests while the session manager is anonymous.
// On success the active role and identity id are stored in the gin context.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, id, ok := sessions.Current()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set(ContextRole, role)
		c.Set(ContextIdentityID, id)
		c.Next()
	}
}

// RequireRole additionally restricts the route to one role.
func RequireRole(sessions *session.Manager, required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, id, ok := sessions.Current()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Set(ContextRole, role)
		c.Set(ContextIdentityID, id)
		c.Next()
	}
}

// IdentityID returns the acting identity placed by the middleware.
func IdentityID(c *gin.Context) string {
	return c.GetString(ContextIdentityID)
}
