package mock

import (
	"context"

	"github.com/fwojciec/newsfeed"
)

var _ newsfeed.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of newsfeed.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, feed *newsfeed.Feed) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, feed *newsfeed.Feed) error {
	return w.WriteReportFn(ctx, feed)
}
