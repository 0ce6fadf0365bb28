package api

import (
	"worldsporta/internal/state" // Application state

	"github.com/gin-gonic/gin" // Gin web framework
)

// healthOptimal is what the dashboard reports while the process is serving
const healthOptimal = "OPTIMAL"

// dashboardData aggregates the counts shown on the admin dashboard
func dashboardData(st *state.State) gin.H {
	return gin.H{
		"UserCount":  len(st.Users()),  // Registered accounts
		"NewsCount":  len(st.News()),   // Published articles
		"ScoreCount": len(st.Scores()), // Matches covered
		"Health":     healthOptimal,    // Static health badge
	}
}
