package i18n

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// DefaultTitle is used when app.title has no translation
const DefaultTitle = "Meal Selection"

const (
	textAttr = "data-i18n"
	htmlAttr = "data-i18n-html"
)

var htmlPolicy = newHTMLPolicy()

// newHTMLPolicy allows inline formatting in translated markup
func newHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"p", "br", "span",
		"strong", "b", "em", "i", "small",
		"ul", "ol", "li",
	)
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Page is an HTML document whose marked elements are filled from a translation table.
// Elements carry the key path in data-i18n (plain text) or data-i18n-html (markup).
type Page struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// NewPage parses an HTML document
func NewPage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Page{doc: doc}, nil
}

// Render applies the snapshot to the document: direction, language,
// marked elements and the title.
func (p *Page) Render(s Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	root := p.doc.Find("html")
	root.SetAttr("dir", s.Dir)
	root.SetAttr("lang", s.Lang)

	p.doc.Find("[" + textAttr + "]").Each(func(_ int, el *goquery.Selection) {
		key, _ := el.Attr(textAttr)
		value := s.T(key)
		if isTextInput(el) {
			el.SetAttr("placeholder", value)
			return
		}
		el.SetText(value)
	})

	p.doc.Find("[" + htmlAttr + "]").Each(func(_ int, el *goquery.Selection) {
		key, _ := el.Attr(htmlAttr)
		el.SetHtml(htmlPolicy.Sanitize(s.T(key)))
	})

	title := p.doc.Find("title")
	if title.Length() == 0 {
		p.doc.Find("head").AppendHtml("<title></title>")
		title = p.doc.Find("title")
	}
	title.SetText(s.T("app.title", DefaultTitle))
}

// HTML returns the rendered document
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out, err := p.doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return out, nil
}

// Text returns the text of the first element matching selector
func (p *Page) Text(selector string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return strings.TrimSpace(p.doc.Find(selector).First().Text())
}

// Attr returns an attribute of the first element matching selector
func (p *Page) Attr(selector, name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc.Find(selector).First().Attr(name)
}

// InnerHTML returns the markup inside the first element matching selector
func (p *Page) InnerHTML(selector string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out, _ := p.doc.Find(selector).First().Html()
	return out
}

func isTextInput(el *goquery.Selection) bool {
	if goquery.NodeName(el) != "input" {
		return false
	}
	typ, ok := el.Attr("type")
	return !ok || strings.EqualFold(typ, "text")
}
