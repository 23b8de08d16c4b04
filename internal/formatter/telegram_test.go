package formatter

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kiev")
	require.NoError(t, err)

	f := NewTelegramFormatter(kyiv)
	at := time.Date(2025, 3, 14, 12, 30, 5, 0, time.UTC)
	assert.Equal(t, "3/14/25, 2:30:05 PM", f.FormatTimestamp(at))

	assert.Equal(t, "3/14/25, 12:30:05 PM", NewTelegramFormatter(nil).FormatTimestamp(at))
}

func TestFormatDecision(t *testing.T) {
	f := NewTelegramFormatter(time.UTC)
	banner := Banner{
		Headline:   "🟢 ORDER CONFIRMED 🟢",
		Status:     "✅ <b>STATUS: APPROVED</b>",
		StampLabel: "Confirmed at",
		Footer:     "🎉 <b>Order is being prepared!</b>",
	}
	at := time.Date(2025, 1, 2, 9, 4, 5, 0, time.UTC)

	t.Run("embeds body and actor", func(t *testing.T) {
		text := f.FormatDecision(banner, "Jane", "Table 4\n2x Borscht", at)

		assert.True(t, strings.HasPrefix(text, banner.Headline+"\n\n"+banner.Status))
		assert.Contains(t, text, "⏰ Confirmed at: 1/2/25, 9:04:05 AM")
		assert.Contains(t, text, "👤 Staff: Jane")
		assert.Contains(t, text, separator+"\nTable 4\n2x Borscht\n"+separator)
		assert.True(t, strings.HasSuffix(text, banner.Footer))
	})

	t.Run("defaults actor", func(t *testing.T) {
		text := f.FormatDecision(banner, "", "body", at)
		assert.Contains(t, text, "👤 Staff: Admin")
	})

	t.Run("escapes user supplied text", func(t *testing.T) {
		text := f.FormatDecision(banner, "<Bob>", "fish & chips <b>", at)
		assert.Contains(t, text, "👤 Staff: &lt;Bob&gt;")
		assert.Contains(t, text, "fish &amp; chips &lt;b&gt;")
	})

	t.Run("truncates long body", func(t *testing.T) {
		text := f.FormatDecision(banner, "Jane", strings.Repeat("x", 5000), at)
		assert.Contains(t, text, "(message truncated)")
		assert.LessOrEqual(t, utf8.RuneCountInString(text), 4000)
		assert.True(t, strings.HasSuffix(text, banner.Footer))
	})

	t.Run("budget counts runes not bytes", func(t *testing.T) {
		// banner emoji and separators are multi-byte, so a byte budget would leave the body short
		text := f.FormatDecision(banner, "Олена", strings.Repeat("б", 5000), at)
		n := utf8.RuneCountInString(text)
		assert.LessOrEqual(t, n, 4000)
		assert.Greater(t, n, 3900)
	})

	t.Run("escaping does not split entities", func(t *testing.T) {
		text := f.FormatDecision(banner, "Jane", strings.Repeat("&", 5000), at)
		visible := strings.ReplaceAll(text, "&amp;", "&")
		assert.LessOrEqual(t, utf8.RuneCountInString(visible), 4000)
		assert.Contains(t, text, "&amp;\n... (message truncated)")
		assert.NotContains(t, visible, "&amp")
	})

	t.Run("short body is untouched", func(t *testing.T) {
		body := strings.Repeat("б", 100)
		text := f.FormatDecision(banner, "Jane", body, at)
		assert.Contains(t, text, body)
		assert.NotContains(t, text, "(message truncated)")
	})
}

func TestStripLeadingLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "strips two lines", in: "🛎 WAITER CALL\nTable 5\nGuest: Anna\nNeeds water", n: 2, want: "Guest: Anna\nNeeds water"},
		{name: "exactly two lines", in: "a\nb\n", n: 2, want: ""},
		{name: "fewer lines", in: "only one", n: 2, want: ""},
		{name: "zero", in: "a\nb", n: 0, want: "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripLeadingLines(tt.in, tt.n))
		})
	}
}
