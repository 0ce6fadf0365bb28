package api

import (
	"net/http"

	"worldsporta/internal/game"

	"github.com/gin-gonic/gin"
)

// StartGameHandler starts (or restarts) the reflex game
func StartGameHandler(session *game.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Start()
		c.Redirect(http.StatusSeeOther, "/game")
	}
}

// HitTargetHandler registers a hit; ignored unless a game is running
func HitTargetHandler(session *game.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Hit()
		c.Redirect(http.StatusSeeOther, "/game")
	}
}

// GameStateHandler returns the game snapshot
func GameStateHandler(session *game.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, session.Snapshot())
	}
}
