package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsfeed"
)

// Ensure LoggingReportWriter implements newsfeed.ReportWriter.
var _ newsfeed.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with logging.
type LoggingReportWriter struct {
	next   newsfeed.ReportWriter
	logger *slog.Logger
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
func NewLoggingReportWriter(next newsfeed.ReportWriter, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs the operation.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, feed *newsfeed.Feed) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write report",
			"categories", feed.Len(),
			"items", feed.Total(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, feed)
}
