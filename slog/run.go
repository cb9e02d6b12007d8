package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsfeed"
)

// Ensure LoggingRunService implements newsfeed.RunService.
var _ newsfeed.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging of writes.
type LoggingRunService struct {
	next   newsfeed.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next newsfeed.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *newsfeed.Run, content string, feed *newsfeed.Feed) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("archive run",
			"id", run.ID,
			"source", run.Source,
			"items", run.Items,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run, content, feed)
}

// FindRunByID delegates to the wrapped service.
func (s *LoggingRunService) FindRunByID(ctx context.Context, id string) (*newsfeed.Run, error) {
	return s.next.FindRunByID(ctx, id)
}

// FindRuns delegates to the wrapped service.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter newsfeed.RunFilter) ([]*newsfeed.Run, error) {
	return s.next.FindRuns(ctx, filter)
}

// FindFeedByRunID delegates to the wrapped service.
func (s *LoggingRunService) FindFeedByRunID(ctx context.Context, id string) (*newsfeed.Feed, error) {
	return s.next.FindFeedByRunID(ctx, id)
}

// DeleteRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) DeleteRun(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete run",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRun(ctx, id)
}
