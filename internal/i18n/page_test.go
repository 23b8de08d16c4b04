package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html>
<head><title>placeholder</title></head>
<body>
  <h1 data-i18n="app.title"></h1>
  <p data-i18n="menu.missing">old text</p>
  <input id="search" data-i18n="menu.search">
  <input id="query" type="text" data-i18n="menu.search">
  <input id="go" type="submit" data-i18n="menu.go">
  <div id="about" data-i18n-html="app.about"></div>
</body>
</html>`

func renderTestPage(t *testing.T, s Snapshot) *Page {
	t.Helper()
	page, err := NewPage(strings.NewReader(testPage))
	require.NoError(t, err)
	page.Render(s)
	return page
}

func TestPageRender(t *testing.T) {
	s := Snapshot{Lang: "he", Dir: "rtl", table: Table{
		"app": map[string]any{
			"title": "בחירת ארוחה",
			"about": `<strong>טרי</strong> <script>alert(1)</script><a href="https://example.com" onclick="x()">קישור</a>`,
		},
		"menu": map[string]any{"search": "חיפוש", "go": "שלח"},
	}}
	page := renderTestPage(t, s)

	dir, ok := page.Attr("html", "dir")
	require.True(t, ok)
	assert.Equal(t, "rtl", dir)
	lang, _ := page.Attr("html", "lang")
	assert.Equal(t, "he", lang)

	assert.Equal(t, "בחירת ארוחה", page.Text("title"))
	assert.Equal(t, "בחירת ארוחה", page.Text("h1"))
	assert.Equal(t, "menu.missing", page.Text("p"))

	placeholder, ok := page.Attr("#search", "placeholder")
	require.True(t, ok, "input without type is a text input")
	assert.Equal(t, "חיפוש", placeholder)
	placeholder, _ = page.Attr("#query", "placeholder")
	assert.Equal(t, "חיפוש", placeholder)
	_, ok = page.Attr("#go", "placeholder")
	assert.False(t, ok, "only text inputs get a placeholder")

	about := page.InnerHTML("#about")
	assert.Contains(t, about, "<strong>טרי</strong>")
	assert.Contains(t, about, `href="https://example.com"`)
	assert.NotContains(t, about, "<script")
	assert.NotContains(t, about, "onclick")
}

func TestPageRenderTitleFallback(t *testing.T) {
	page, err := NewPage(strings.NewReader(`<html><head></head><body></body></html>`))
	require.NoError(t, err)

	page.Render(Snapshot{Lang: "en", Dir: "ltr"})

	assert.Equal(t, DefaultTitle, page.Text("title"))
	out, err := page.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, `<html dir="ltr" lang="en">`)
	assert.Equal(t, 1, strings.Count(out, "<title>"))

	page.Render(Snapshot{Lang: "en", Dir: "ltr"})
	out, err = page.HTML()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "<title>"), "re-render must not add another title")
}

func TestPageRenderEscapesText(t *testing.T) {
	page := renderTestPage(t, Snapshot{Lang: "en", Dir: "ltr", table: Table{
		"app": map[string]any{"title": "<b>Meals</b>"},
	}})

	out, err := page.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;b&gt;Meals&lt;/b&gt;")
}
