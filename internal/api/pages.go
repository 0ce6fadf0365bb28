package api

import (
	"net/http" // HTTP status codes

	"worldsporta/internal/domain" // Importing domain models
	"worldsporta/internal/game"   // Mini-game session
	"worldsporta/internal/route"  // View resolution and filters
	"worldsporta/internal/state"  // Application state

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// latestCount is how many articles the home page features
const latestCount = 3

// trendingTags are shown beside every article
var trendingTags = []string{"MatchAnalysis", "Transfers", "Fitness", "Tactics", "Draft2024"}

// Page is the data every view template receives
type Page struct {
	Title     string      // Browser title
	View      route.View  // Template name
	User      domain.User // Signed-in user, zero when SignedIn is false
	SignedIn  bool        // A user is signed in
	CartCount int         // Units in the cart, shown in the nav
	Notice    string      // Blocking notice, such as a failed login
	Refresh   bool        // Reload the page every second while something is pending
	Data      any         // View specific payload
}

// CategoryFilter drives the category links on listing pages
type CategoryFilter struct {
	Categories []domain.SportCategory // Closed set in display order
	Active     domain.SportCategory   // Currently selected
	Base       string                 // Listing path the links point at
	Query      string                 // Search text carried along
}

// PageHandler resolves the request path to a view and renders it from the current state
func PageHandler(st *state.State, session *game.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			page, status := notFoundPage(st, "Page not found") // Only reads render views
			render(c, status, page)
			return
		}
		res := route.Resolve(c.Request.URL.Path, st) // Pick the view
		if res.View != route.ViewArticle {
			st.CloseArticle() // Leaving the article drops its summary
		}
		if res.Redirect != "" {
			c.Redirect(http.StatusSeeOther, res.Redirect) // Access denied
			return
		}
		status := http.StatusOK
		page := newPage(st, res.View)
		switch res.View {
		case route.ViewHome:
			page.Title = "Home"
			page.Data = homeData(st)
		case route.ViewNews:
			category, err := domain.ParseSportCategory(c.Query("category"))
			if err != nil {
				category = domain.All // Unknown category falls back to everything
			}
			q := c.Query("q")
			page.Title = "News"
			page.Data = gin.H{
				"Posts":  route.FilterNews(st.News(), category, q),
				"Filter": CategoryFilter{Categories: domain.Categories(), Active: category, Base: "/news", Query: q},
			}
		case route.ViewArticle:
			post, err := st.OpenArticle(res.Param("id"))
			if err != nil {
				page, status = notFoundPage(st, "Article not found")
				break
			}
			summary := st.Summary(post.ID)
			page.Title = post.Title
			page.Refresh = summary.Pending
			page.Data = gin.H{"Post": post, "Summary": summary, "Tags": trendingTags}
		case route.ViewStore:
			category, err := domain.ParseSportCategory(c.Query("category"))
			if err != nil {
				category = domain.All
			}
			page.Title = "Store"
			page.Data = gin.H{
				"Products": route.FilterProducts(st.Products(), category),
				"Filter":   CategoryFilter{Categories: domain.Categories(), Active: category, Base: "/store"},
			}
		case route.ViewCart:
			page.Title = "Cart"
			page.Data = gin.H{"Items": st.Cart(), "Total": st.CartTotal()}
		case route.ViewGame:
			snap := session.Snapshot()
			page.Title = "Game"
			page.Refresh = snap.Phase == game.Playing
			page.Data = gin.H{"Game": snap}
		case route.ViewLogin:
			page.Title = "Login"
			page.Data = gin.H{"Username": ""}
		case route.ViewAdminDashboard:
			page.Title = "Admin"
			page.Data = dashboardData(st)
		case route.ViewAdminUsers:
			page.Title = "Users"
			page.Data = gin.H{"Users": st.Users()}
		case route.ViewAdminNews:
			page.Title = "Editorial"
		default:
			page, status = notFoundPage(st, "Page not found")
		}
		render(c, status, page)
	}
}

// newPage fills the fields shared by every view
func newPage(st *state.State, view route.View) Page {
	u, ok := st.CurrentUser()
	return Page{View: view, User: u, SignedIn: ok, CartCount: st.CartCount()}
}

func notFoundPage(st *state.State, msg string) (Page, int) {
	page := newPage(st, route.ViewNotFound)
	page.Title = "Not found"
	page.Data = gin.H{"Message": msg}
	return page, http.StatusNotFound
}

func homeData(st *state.State) gin.H {
	news := st.News()
	if len(news) > latestCount {
		news = news[:latestCount]
	}
	return gin.H{"Scores": st.Scores(), "Latest": news}
}

// render writes the view template, logging template failures
func render(c *gin.Context, status int, page Page) {
	c.HTML(status, string(page.View), page)
	if len(c.Errors) > 0 {
		logrus.WithFields(logrus.Fields{
			"view":  page.View,          // Template name
			"error": c.Errors.String(), // Render errors
		}).Error("Render failed")
	}
}
