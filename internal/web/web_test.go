package web

import (
	"strings"
	"testing"

	"worldsporta/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_DefineEveryView(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"home", "news", "article", "store", "cart", "game", "login",
		"admin_dashboard", "admin_users", "admin_news", "not_found",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestFuncs(t *testing.T) {
	price := Funcs["price"].(func(float64) string)
	pct := Funcs["pct"].(func(float64) string)

	assert.Equal(t, "$129.99", price(129.99))
	assert.Equal(t, "42.5", pct(42.5))

	initial := Funcs["initial"].(func(string) string)
	assert.Equal(t, "É", initial("émile"))
	assert.Equal(t, "?", initial(""))
}

func TestTemplates_CommentAvatarIsRuneAware(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var b strings.Builder
	data := map[string]any{"Data": map[string]any{"Post": domain.NewsPost{ID: "1", Comments: []domain.Comment{
		{ID: "c1", User: "élodie", Text: "Bravo"},
		{ID: "c2", User: "", Text: "Anonymous"},
	}}}}
	require.NoError(t, tmpl.ExecuteTemplate(&b, "comment_thread", data))
	assert.Contains(t, b.String(), `<span class="avatar">É</span>`)
	assert.Contains(t, b.String(), `<span class="avatar">?</span>`)
}
