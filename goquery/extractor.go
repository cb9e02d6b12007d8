// Package goquery implements news card extraction using CSS selectors.
package goquery

import (
	"io"
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/newsfeed"
	"golang.org/x/net/html"
)

// Ensure Extractor implements newsfeed.Extractor at compile time.
var _ newsfeed.Extractor = (*Extractor)(nil)

// Extractor pulls news entries out of listing pages. Each card must carry a
// rubric link and a primary link; cards missing either are skipped. Every
// other field falls back to an empty string.
type Extractor struct {
	selectors newsfeed.Selectors
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors overrides the card markup. Empty fields keep their defaults.
func WithSelectors(s newsfeed.Selectors) Option {
	return func(e *Extractor) {
		e.selectors = s.WithDefaults()
	}
}

// NewExtractor creates an Extractor for the default card layout.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{selectors: newsfeed.DefaultSelectors()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Selectors returns the selectors in effect.
func (e *Extractor) Selectors() newsfeed.Selectors {
	return e.selectors
}

// Parse builds a document tree from HTML.
func Parse(r io.Reader) (*goquery.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, newsfeed.Errorf(newsfeed.EINVALID, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// Extract parses s and returns its entries.
func (e *Extractor) Extract(s string) (iter.Seq[newsfeed.Entry], error) {
	doc, err := Parse(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return e.Entries(doc), nil
}

// Entries walks doc lazily and yields one entry per accepted card in
// document order. The tree is not modified.
func (e *Extractor) Entries(doc *goquery.Document) iter.Seq[newsfeed.Entry] {
	return func(yield func(newsfeed.Entry) bool) {
		doc.Find(e.selectors.Card).EachWithBreak(func(_ int, card *goquery.Selection) bool {
			entry, ok := e.entry(card)
			if !ok {
				return true
			}
			return yield(entry)
		})
	}
}

func (e *Extractor) entry(card *goquery.Selection) (newsfeed.Entry, bool) {
	s := e.selectors

	rubric := findFirst(card, s.Rubric)
	if rubric.Length() == 0 {
		return newsfeed.Entry{}, false
	}

	link := findFirst(card, s.Link)
	if link.Length() == 0 {
		return newsfeed.Entry{}, false
	}

	href, _ := link.Attr("href")
	info := findFirst(link, s.Info)
	timeSel := findFirst(info, s.Time)
	datetime, _ := timeSel.Attr(s.TimeAttr)

	return newsfeed.Entry{
		Category: text(rubric),
		Item: newsfeed.Item{
			Title:       text(findFirst(info, s.Title)),
			Description: text(findFirst(info, s.Description)),
			URL:         strings.TrimSpace(href),
			Datetime:    datetime,
			TimeText:    text(timeSel),
		},
	}, true
}

// findFirst returns the first descendant of sel matching selector.
// The result is empty when sel is empty or nothing matches.
func findFirst(sel *goquery.Selection, selector string) *goquery.Selection {
	return sel.Find(selector).First()
}

func text(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.Text())
}

// CompileSelectors reports the first CSS selector in s that does not compile.
func CompileSelectors(s newsfeed.Selectors) error {
	fields := []struct {
		name  string
		value string
	}{
		{"card", s.Card},
		{"rubric", s.Rubric},
		{"link", s.Link},
		{"info", s.Info},
		{"title", s.Title},
		{"description", s.Description},
		{"time", s.Time},
	}
	for _, f := range fields {
		if _, err := cascadia.Compile(f.value); err != nil {
			return newsfeed.Errorf(newsfeed.EINVALID, "invalid %s selector %q: %v", f.name, f.value, err)
		}
	}
	return nil
}
