package newsfeed

import "iter"

// Item is a single news reference extracted from a listing page.
// Every field is always present; missing markup degrades to an empty string.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Datetime    string `json:"datetime"`
	TimeText    string `json:"time_text"`
}

// Entry pairs an extracted item with the rubric it is filed under.
type Entry struct {
	Category string
	Item     Item
}

// Extractor finds news cards in an HTML document.
type Extractor interface {
	// Extract parses html and returns the accepted cards in document order.
	// The returned sequence is lazy and finite. Cards without a rubric or
	// primary link are skipped; a document without cards yields nothing.
	Extract(html string) (iter.Seq[Entry], error)
}
