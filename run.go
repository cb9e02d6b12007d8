package newsfeed

import (
	"context"
	"time"
)

// Run records one archived execution of the parser.
type Run struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	ContentHash string    `json:"contentHash"`
	Categories  int       `json:"categories"`
	Items       int       `json:"items"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "run source required")
	}
	return nil
}

// RunService represents a service for archiving parse runs.
type RunService interface {
	// CreateRun stores run metadata together with the feed it produced.
	// ID, CreatedAt and the counters are filled in from feed.
	// ContentHash is computed from content.
	CreateRun(ctx context.Context, run *Run, content string, feed *Feed) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindFeedByRunID rebuilds the feed stored with a run.
	// Returns ENOTFOUND if run does not exist.
	FindFeedByRunID(ctx context.Context, id string) (*Feed, error)

	// DeleteRun permanently removes a run and its items.
	// Returns ENOTFOUND if run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
