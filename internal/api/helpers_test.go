package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"worldsporta/internal/assist"
	"worldsporta/internal/game"
	"worldsporta/internal/state"
	"worldsporta/internal/utils"
	"worldsporta/internal/web"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router  *gin.Engine
	state   *state.State
	session *game.Session
}

// newTestApp wires the router around an in-memory generator that echoes a fixed reply
func newTestApp(t *testing.T, reply string) *testApp {
	t.Helper()
	return newTestAppWith(t, assist.GeneratorFunc(func(ctx context.Context, req assist.Request) (string, error) {
		return reply, nil
	}))
}

// newTestAppWith wires the router around the given generator
func newTestAppWith(t *testing.T, gen assist.Generator) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gw := assist.NewGateway(gen, time.Second)
	st := state.New(
		state.WithSummarizer(gw),
		state.WithIDGenerator(&utils.SequenceGenerator{Prefix: "t"}),
		state.WithClock(utils.FixedClock(time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC))),
	)
	session := game.NewSession(game.WithManualTicks())
	t.Cleanup(session.Close)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := NewRouter(Deps{State: st, Assist: gw, Game: session, Templates: tmpl}, gin.New())
	return &testApp{router: r, state: st, session: session}
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postJSON(path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	a.router.ServeHTTP(w, req)
	return w
}

func document(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	return doc
}
