package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"worldsporta/internal/assist"
	"worldsporta/internal/game"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_ShowsScoresAndLatestNews(t *testing.T) {
	app := newTestApp(t, "")

	w := app.get("/")

	require.Equal(t, http.StatusOK, w.Code)
	doc := document(t, w)
	assert.Equal(t, 5, doc.Find("#scores .score").Length())
	assert.Equal(t, 3, doc.Find("#latest .post").Length())
	assert.Equal(t, "0", doc.Find("#cart-count").Text())
	assert.Equal(t, 1, doc.Find("#login-link").Length())
}

func TestNews_FiltersByCategoryAndQuery(t *testing.T) {
	app := newTestApp(t, "")

	doc := document(t, app.get("/news?category=Cricket"))
	assert.Equal(t, 1, doc.Find("#posts .post").Length())

	doc = document(t, app.get("/news?q=the+"))
	var ids []string
	doc.Find("#posts .post").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		ids = append(ids, strings.TrimPrefix(href, "/news/"))
	})
	assert.Equal(t, []string{"2", "3", "5"}, ids)
}

func TestNews_UnknownCategoryShowsEverything(t *testing.T) {
	app := newTestApp(t, "")

	doc := document(t, app.get("/news?category=Curling"))

	assert.Equal(t, 5, doc.Find("#posts .post").Length())
}

func TestArticle_DeepLink(t *testing.T) {
	app := newTestApp(t, "")

	w := app.get("/news/1")

	require.Equal(t, http.StatusOK, w.Code)
	doc := document(t, w)
	id, _ := doc.Find("#article").Attr("data-id")
	assert.Equal(t, "1", id)
	assert.Equal(t, "FootballFan99", doc.Find("#comments .comment .user").First().Text())
	assert.Equal(t, 5, doc.Find(".tag").Length())
}

func TestArticle_UnknownIDIsNotFound(t *testing.T) {
	app := newTestApp(t, "")

	w := app.get("/news/42")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, document(t, w).Find("#not-found").Length())
}

func TestUnknownPathIsNotFound(t *testing.T) {
	app := newTestApp(t, "")

	w := app.get("/nowhere/at/all")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_AnonymousRedirectsToLogin(t *testing.T) {
	app := newTestApp(t, "")

	for _, p := range []string{"/admin", "/admin/users", "/admin/news", "/admin/unknown"} {
		w := app.get(p)
		assert.Equal(t, http.StatusSeeOther, w.Code, p)
		assert.Equal(t, "/login", w.Header().Get("Location"), p)
	}
}

func TestAdmin_RegularUserRedirectsToLogin(t *testing.T) {
	app := newTestApp(t, "")
	app.postForm("/login", url.Values{"username": {"johndoe"}})

	w := app.get("/admin/users")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAdmin_UsersListedForAdmin(t *testing.T) {
	app := newTestApp(t, "")
	w := app.postForm("/login", url.Values{"username": {"admin"}, "password": {"anything"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = app.get("/admin/users")

	require.Equal(t, http.StatusOK, w.Code)
	doc := document(t, w)
	rows := doc.Find("#users tr.user")
	assert.Equal(t, 4, rows.Length())
	blocked := rows.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find(".username").Text() == "coach_mike"
	})
	assert.Equal(t, "Restricted", blocked.Find(".status").Text())
}

func TestAdmin_DashboardAndEditorial(t *testing.T) {
	app := newTestApp(t, "")
	app.postForm("/login", url.Values{"username": {"admin"}})

	doc := document(t, app.get("/admin"))
	assert.Equal(t, "4", doc.Find("#user-count").Text())
	assert.Equal(t, "5", doc.Find("#news-count").Text())
	assert.Equal(t, "5", doc.Find("#score-count").Text())
	assert.Equal(t, "OPTIMAL", doc.Find("#health").Text())
	assert.Equal(t, 1, doc.Find("#admin-link").Length())

	doc = document(t, app.get("/admin/news"))
	assert.Equal(t, "News Mgmt (Placeholder)", doc.Find("#editorial").Text())
}

func TestAdmin_UnknownSubpathIsNotFoundForAdmin(t *testing.T) {
	app := newTestApp(t, "")
	app.postForm("/login", url.Values{"username": {"admin"}})

	w := app.get("/admin/settings")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogin_UnknownUserShowsNotice(t *testing.T) {
	app := newTestApp(t, "")

	w := app.postForm("/login", url.Values{"username": {"Admin"}})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	doc := document(t, w)
	assert.Equal(t, "Invalid credentials.", doc.Find("#notice").Text())
	_, signedIn := app.state.CurrentUser()
	assert.False(t, signedIn)
}

func TestLogin_MissingUsername(t *testing.T) {
	app := newTestApp(t, "")

	w := app.postForm("/login", url.Values{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	app := newTestApp(t, "")
	app.postForm("/login", url.Values{"username": {"johndoe"}})
	assert.Equal(t, "johndoe", document(t, app.get("/")).Find("#current-user").Text())

	w := app.postForm("/logout", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	_, signedIn := app.state.CurrentUser()
	assert.False(t, signedIn)
}

func TestCart_AddFromStore(t *testing.T) {
	app := newTestApp(t, "")

	w := app.postForm("/store/cart", url.Values{"product_id": {"p1"}, "category": {"Football"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/store?category=Football", w.Header().Get("Location"))
	app.postForm("/store/cart", url.Values{"product_id": {"p1"}})
	app.postForm("/store/cart", url.Values{"product_id": {"nope"}})

	doc := document(t, app.get("/store/cart"))
	assert.Equal(t, "2", doc.Find("#cart-count").Text())
	assert.Equal(t, 1, doc.Find("#cart .item").Length())
	assert.Equal(t, "2", doc.Find("#cart .item .quantity").Text())
}

func TestStore_FiltersByCategory(t *testing.T) {
	app := newTestApp(t, "")

	all := document(t, app.get("/store")).Find("#products .product").Length()
	football := document(t, app.get("/store?category=Football")).Find("#products .product").Length()

	assert.Equal(t, 7, all)
	assert.Less(t, football, all)
	assert.Positive(t, football)
}

func TestComment_PostedAsGuest(t *testing.T) {
	app := newTestApp(t, "")

	w := app.postForm("/news/1/comments", url.Values{"text": {"What a match"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/news/1", w.Header().Get("Location"))

	first := document(t, app.get("/news/1")).Find("#comments .comment").First()
	assert.Equal(t, "Guest_User", first.Find(".user").Text())
	assert.Equal(t, "What a match", first.Find(".text").Text())
}

func TestComment_BlankIgnored(t *testing.T) {
	app := newTestApp(t, "")

	app.postForm("/news/1/comments", url.Values{"text": {"   "}})

	post, err := app.state.Post("1")
	require.NoError(t, err)
	assert.Len(t, post.Comments, 1)
}

func TestSummary_RequestedFromArticle(t *testing.T) {
	app := newTestApp(t, "A short recap.")
	app.get("/news/2")

	w := app.postForm("/news/2/summary", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	app.state.WaitSummaries()

	doc := document(t, app.get("/news/2"))
	assert.Equal(t, "A short recap.", doc.Find("#summary .summary-text").Text())
}

func TestSummary_DroppedAfterLeavingArticle(t *testing.T) {
	release := make(chan struct{})
	app := newTestAppWith(t, assist.GeneratorFunc(func(ctx context.Context, req assist.Request) (string, error) {
		<-release
		return "Late summary.", nil
	}))
	app.get("/news/1")
	app.postForm("/news/1/summary", nil)

	app.get("/store")
	close(release)
	app.state.WaitSummaries()

	doc := document(t, app.get("/news/1"))
	assert.Empty(t, doc.Find("#summary .summary-text").Text())
	assert.False(t, app.state.Summary("1").Pending)
}

func TestSummary_FallbackOnBlankReply(t *testing.T) {
	app := newTestApp(t, "   ")

	app.postForm("/news/3/summary", nil)
	app.state.WaitSummaries()

	doc := document(t, app.get("/news/3"))
	assert.Equal(t, assist.SummaryFallback, doc.Find("#summary .summary-text").Text())
}

func TestGame_StartAndHit(t *testing.T) {
	app := newTestApp(t, "")

	w := app.postForm("/game/start", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	app.postForm("/game/hit", nil)

	doc := document(t, app.get("/game"))
	phase, _ := doc.Find("#game").Attr("data-phase")
	assert.Equal(t, string(game.Playing), phase)
	assert.Equal(t, "10", doc.Find("#score").Text())
	assert.Equal(t, "15", doc.Find("#time-left").Text())
}

func TestGame_FinishedShowsFinalScore(t *testing.T) {
	app := newTestApp(t, "")
	app.postForm("/game/start", nil)
	for i := 0; i < game.Duration; i++ {
		app.session.Tick()
	}

	doc := document(t, app.get("/game"))

	assert.Equal(t, "Final score: 0", doc.Find("#final").Text())
}
