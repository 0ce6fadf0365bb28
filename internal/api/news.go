package api

import (
	"errors"   // Sentinel matching
	"net/http" // HTTP status codes

	"worldsporta/internal/assist" // Text generation gateway
	"worldsporta/internal/domain" // Importing domain models
	"worldsporta/internal/route"  // Category and search filters
	"worldsporta/internal/state"  // Application state

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CommentRequest carries a new comment
type CommentRequest struct {
	Text string `form:"text" json:"text" binding:"required"` // Comment body
}

// AddCommentHandler posts a comment from the article page. Blank text is ignored.
func AddCommentHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req CommentRequest
		if err := c.ShouldBind(&req); err == nil {
			if _, err := st.AddComment(id, req.Text); err != nil && !errors.Is(err, domain.ErrEmptyInput) {
				logrus.WithFields(logrus.Fields{"post_id": id, "error": err.Error()}).Warn("Comment rejected")
			}
		}
		c.Redirect(http.StatusSeeOther, "/news/"+id)
	}
}

// RequestSummaryHandler starts an AI summary for the article and returns to it
func RequestSummaryHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := st.RequestSummary(c.Request.Context(), id); err != nil {
			logrus.WithFields(logrus.Fields{"post_id": id, "error": err.Error()}).Warn("Summary not started")
		}
		c.Redirect(http.StatusSeeOther, "/news/"+id)
	}
}

// ListNewsHandler returns articles filtered by category and title search
func ListNewsHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := domain.ParseSportCategory(c.Query("category"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"news": route.FilterNews(st.News(), category, c.Query("q"))})
	}
}

// GetNewsHandler returns one article with its comments
func GetNewsHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := st.Post(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"post": post})
	}
}

// AddCommentAPIHandler posts a comment and returns it
func AddCommentAPIHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CommentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
			return
		}
		comment, err := st.AddComment(c.Param("id"), req.Text)
		switch {
		case errors.Is(err, domain.ErrEmptyInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		default:
			c.JSON(http.StatusCreated, gin.H{"comment": comment})
		}
	}
}

// ListScoresHandler returns every match score
func ListScoresHandler(st *state.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"scores": st.Scores()})
	}
}

// ScoreAnalysisHandler asks the gateway for a pre-match analysis of one fixture.
// The gateway never fails, so the response is always 200 once the match exists.
func ScoreAnalysisHandler(st *state.State, gw *assist.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := st.Score(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		text := gw.Analyze(c.Request.Context(), m.TeamA, m.TeamB, string(m.Sport))
		c.JSON(http.StatusOK, gin.H{"match": m, "analysis": text})
	}
}
