package mock

import (
	"context"

	"github.com/fwojciec/newsfeed"
)

var _ newsfeed.RunService = (*RunService)(nil)

// RunService is a mock implementation of newsfeed.RunService.
type RunService struct {
	CreateRunFn       func(ctx context.Context, run *newsfeed.Run, content string, feed *newsfeed.Feed) error
	FindRunByIDFn     func(ctx context.Context, id string) (*newsfeed.Run, error)
	FindRunsFn        func(ctx context.Context, filter newsfeed.RunFilter) ([]*newsfeed.Run, error)
	FindFeedByRunIDFn func(ctx context.Context, id string) (*newsfeed.Feed, error)
	DeleteRunFn       func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *newsfeed.Run, content string, feed *newsfeed.Feed) error {
	return s.CreateRunFn(ctx, run, content, feed)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*newsfeed.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter newsfeed.RunFilter) ([]*newsfeed.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) FindFeedByRunID(ctx context.Context, id string) (*newsfeed.Feed, error) {
	return s.FindFeedByRunIDFn(ctx, id)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
