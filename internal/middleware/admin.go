package middleware

import (
	"net/http" // HTTP status codes

	"worldsporta/internal/domain" // Importing domain models
	"worldsporta/internal/route"  // Access rule

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// AdminOnlyMiddleware sends anyone without the admin role to the login page.
// It must run after SessionMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var role domain.Role // Anonymous visitors have no role
		if u, ok := CurrentUser(c); ok {
			role = u.Role
		}
		// Check the role against the requested path
		if !route.CanAccess(role, c.Request.URL.Path) {
			logrus.WithFields(logrus.Fields{
				"path": c.Request.URL.Path, // Requested page
				"role": role,               // Visitor role, empty when signed out
			}).Info("Admin access denied")
			c.Redirect(http.StatusSeeOther, route.LoginPath)
			c.Abort()
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
