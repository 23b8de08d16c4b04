package formatter

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// TimestampLayout is en-US short date with medium time, e.g. "3/14/25, 2:30:00 PM"
const TimestampLayout = "1/2/06, 3:04:05 PM"

const separator = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

const truncatedSuffix = "\n... (message truncated)"

// Banner decorates an edited order or waiter message
type Banner struct {
	Headline   string // e.g. "🟢🟢🟢 ORDER CONFIRMED 🟢🟢🟢"
	Status     string // e.g. "✅ <b>STATUS: APPROVED</b>"
	StampLabel string // e.g. "Confirmed at"
	Footer     string
}

// TelegramFormatter formats edited messages for Telegram (HTML parse mode)
type TelegramFormatter struct {
	maxLength int
	location  *time.Location
}

// NewTelegramFormatter creates a new Telegram formatter
func NewTelegramFormatter(loc *time.Location) *TelegramFormatter {
	if loc == nil {
		loc = time.UTC
	}
	return &TelegramFormatter{
		maxLength: 4000, // in runes; Telegram counts 4096 after entity parsing
		location:  loc,
	}
}

// FormatTimestamp renders t in the formatter's timezone
func (f *TelegramFormatter) FormatTimestamp(t time.Time) string {
	return t.In(f.location).Format(TimestampLayout)
}

// FormatDecision renders the banner, stamp and staff lines around the original body
func (f *TelegramFormatter) FormatDecision(b Banner, actor, body string, at time.Time) string {
	if actor == "" {
		actor = "Admin"
	}

	var sb strings.Builder
	sb.WriteString(b.Headline)
	sb.WriteString("\n\n")
	sb.WriteString(b.Status)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("⏰ %s: %s\n", b.StampLabel, f.FormatTimestamp(at)))
	sb.WriteString(fmt.Sprintf("👤 Staff: %s\n\n", f.escapeHTML(actor)))
	sb.WriteString(separator + "\n")

	// Telegram counts the parsed text, so the budget is in runes of the unescaped body
	footer := "\n" + separator + "\n\n" + b.Footer
	budget := f.maxLength - utf8.RuneCountInString(sb.String()) - utf8.RuneCountInString(footer)
	body = f.truncate(body, budget)
	sb.WriteString(f.escapeHTML(body))
	sb.WriteString(footer)

	return sb.String()
}

// StripLeadingLines drops the first n lines of s
func StripLeadingLines(s string, n int) string {
	for i := 0; i < n; i++ {
		idx := strings.IndexByte(s, '\n')
		if idx < 0 {
			return ""
		}
		s = s[idx+1:]
	}
	return s
}

// escapeHTML escapes HTML special characters for Telegram
func (f *TelegramFormatter) escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// truncate cuts s so that it fits in maxLen runes including the truncation notice
func (f *TelegramFormatter) truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	keep := maxLen - utf8.RuneCountInString(truncatedSuffix)
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + truncatedSuffix
}
