package slog

import (
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/newsfeed"
)

// Ensure LoggingExtractor implements newsfeed.Extractor.
var _ newsfeed.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. Parsing is logged when
// Extract returns; the entry count is logged once the sequence is drained.
type LoggingExtractor struct {
	next   newsfeed.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next newsfeed.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs parsing and iteration.
func (e *LoggingExtractor) Extract(html string) (iter.Seq[newsfeed.Entry], error) {
	begin := time.Now()
	seq, err := e.next.Extract(html)
	e.logger.Info("parse document",
		"bytes", len(html),
		"duration", time.Since(begin),
		"err", err,
	)
	if err != nil {
		return nil, err
	}

	return func(yield func(newsfeed.Entry) bool) {
		begin := time.Now()
		count := 0
		defer func() {
			e.logger.Info("extract entries",
				"count", count,
				"duration", time.Since(begin),
			)
		}()
		for entry := range seq {
			count++
			if !yield(entry) {
				return
			}
		}
	}, nil
}
