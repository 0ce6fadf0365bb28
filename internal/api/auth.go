package api

import (
	"net/http" // HTTP status codes

	"worldsporta/internal/route" // View names
	"worldsporta/internal/state" // Application state

	"github.com/gin-gonic/gin" // Gin web framework
)

// LoginRequest is the credential form. The password is required by the form but never checked.
type LoginRequest struct {
	Username string `form:"username" binding:"required"` // Username must be provided
	Password string `form:"password"`                    // Accepted and ignored
}

// LoginHandler signs a seeded user in and sends them home
func LoginHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind form to struct
		if err := c.ShouldBind(&req); err != nil {
			loginFailed(c, st, "", "Username is required.")
			return
		}
		if _, err := st.Login(req.Username); err != nil { // Exact, case-sensitive match
			// Unknown user, the state is left as it was
			loginFailed(c, st, req.Username, "Invalid credentials.")
			return
		}
		c.Redirect(http.StatusSeeOther, "/") // Success goes home
	}
}

// LogoutHandler clears the session user
func LogoutHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		st.Logout()
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// loginFailed re-renders the form with a blocking notice
func loginFailed(c *gin.Context, st *state.State, username, notice string) {
	page := newPage(st, route.ViewLogin)
	page.Title = "Login"
	page.Notice = notice
	page.Data = gin.H{"Username": username}
	render(c, http.StatusUnauthorized, page)
}
