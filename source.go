package newsfeed

import "context"

// Default locations used when the caller does not name its own.
const (
	DefaultSource     = "news.html"
	DefaultReportPath = "news_parsed.json"
)

// Loader supplies the raw HTML of a saved listing page.
type Loader interface {
	// Load returns the document text for source.
	// Returns ENOTFOUND if the source does not exist.
	Load(ctx context.Context, source string) (string, error)
}

// ReportWriter persists an aggregated feed.
type ReportWriter interface {
	WriteReport(ctx context.Context, feed *Feed) error
}
