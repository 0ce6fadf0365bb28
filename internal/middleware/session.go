package middleware

import (
	"worldsporta/internal/domain" // Importing domain models
	"worldsporta/internal/state"  // Application state

	"github.com/gin-gonic/gin" // Gin web framework
)

// CurrentUserKey is the context key holding the signed-in domain.User
const CurrentUserKey = "currentUser"

// SessionMiddleware exposes the signed-in user to downstream handlers
func SessionMiddleware(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u, ok := st.CurrentUser(); ok {
			c.Set(CurrentUserKey, u) // Store user in context
		}
		c.Next() // Proceed to the next handler
	}
}

// CurrentUser reads the user stored by SessionMiddleware
func CurrentUser(c *gin.Context) (domain.User, bool) {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return domain.User{}, false
	}
	u, ok := v.(domain.User)
	return u, ok
}
