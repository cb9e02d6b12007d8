// Package slog provides logging decorators for newsfeed services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsfeed"
)

// Ensure LoggingLoader implements newsfeed.Loader.
var _ newsfeed.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   newsfeed.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next newsfeed.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, source string) (html string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load document",
			"source", source,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, source)
}
