package api

import (
	"html/template" // Parsed view templates

	"worldsporta/internal/assist"     // Text generation gateway
	"worldsporta/internal/game"       // Mini-game session
	"worldsporta/internal/middleware" // Session and admin gate
	"worldsporta/internal/route"      // Routing table
	"worldsporta/internal/state"      // Application state

	"github.com/gin-contrib/cors" // CORS for the JSON API
	"github.com/gin-gonic/gin"    // Gin web framework
)

// Deps are the collaborators the handlers need
type Deps struct {
	State     *state.State
	Assist    *assist.Gateway
	Game      *game.Session
	Templates *template.Template
}

// NewRouter builds the gin engine serving the HTML views and the JSON API
func NewRouter(d Deps, r *gin.Engine) *gin.Engine {
	r.SetHTMLTemplate(d.Templates) // Views render from the embedded templates
	r.Use(middleware.SessionMiddleware(d.State))

	// Every row of the routing table is served by the resolver-driven page handler
	pages := PageHandler(d.State, d.Game)
	admin := middleware.AdminOnlyMiddleware()
	for _, rt := range route.Table() {
		if rt.AdminOnly {
			r.GET(rt.Pattern, admin, pages)
			continue
		}
		r.GET(rt.Pattern, pages)
	}
	r.NoRoute(pages) // Unknown paths still resolve, to the not-found view or the login redirect

	// Form posts
	r.POST("/login", LoginHandler(d.State))
	r.POST("/logout", LogoutHandler(d.State))
	r.POST("/store/cart", AddToCartHandler(d.State))
	r.POST("/news/:id/comments", AddCommentHandler(d.State))
	r.POST("/news/:id/summary", RequestSummaryHandler(d.State))
	r.POST("/game/start", StartGameHandler(d.Game))
	r.POST("/game/hit", HitTargetHandler(d.Game))

	// JSON API
	apiGroup := r.Group("/api")
	apiGroup.Use(cors.Default())
	apiGroup.GET("/news", ListNewsHandler(d.State))
	apiGroup.GET("/news/:id", GetNewsHandler(d.State))
	apiGroup.POST("/news/:id/comments", AddCommentAPIHandler(d.State))
	apiGroup.GET("/scores", ListScoresHandler(d.State))
	apiGroup.GET("/scores/:id/analysis", ScoreAnalysisHandler(d.State, d.Assist))
	apiGroup.GET("/products", ListProductsHandler(d.State))
	apiGroup.GET("/cart", GetCartHandler(d.State))
	apiGroup.POST("/cart", AddToCartAPIHandler(d.State))
	apiGroup.GET("/game", GameStateHandler(d.Game))

	return r
}
