package i18n

import (
	"context"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafKeys(prefix string, m map[string]any) []string {
	var keys []string
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			keys = append(keys, leafKeys(path, sub)...)
			continue
		}
		keys = append(keys, path)
	}
	sort.Strings(keys)
	return keys
}

// Shipped tables must be complete: every language carries the keys of the default one.
func TestShippedTablesAreComplete(t *testing.T) {
	f := FSFetcher{FS: os.DirFS("../../static/i18n")}
	ctx := context.Background()

	base, err := f.Fetch(ctx, DefaultLanguage, 0)
	require.NoError(t, err)
	want := leafKeys("", base)
	require.NotEmpty(t, want)

	for _, lang := range defaultSupported {
		t.Run(lang, func(t *testing.T) {
			table, err := f.Fetch(ctx, lang, 0)
			require.NoError(t, err)
			assert.Equal(t, want, leafKeys("", table))

			s := Snapshot{Lang: lang, table: table}
			for _, key := range want {
				assert.NotEqual(t, key, s.T(key), "empty translation")
			}
		})
	}
}

func TestRenderShippedPage(t *testing.T) {
	raw, err := os.ReadFile("../../static/index.html")
	require.NoError(t, err)

	r := New(Options{Fetcher: FSFetcher{FS: os.DirFS("../../static/i18n")}, Retry: fastRetry})
	ctx := context.Background()
	require.NoError(t, r.Init(ctx, "uk-UA"))

	page, err := NewPage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	r.Attach(page)

	assert.Equal(t, "Вибір страв", page.Text("title"))
	placeholder, _ := page.Attr("#search", "placeholder")
	assert.Equal(t, "Пошук страв", placeholder)

	require.NoError(t, r.Switch(ctx, "he"))
	dir, _ := page.Attr("html", "dir")
	assert.Equal(t, "rtl", dir)
	assert.Contains(t, page.InnerHTML("footer p"), "<strong>")
}
