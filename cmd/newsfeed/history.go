package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/newsfeed"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if err := requireArchive(deps); err != nil {
		return err
	}

	filter := newsfeed.RunFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsfeed.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'newsfeed parse --db <path>' to archive one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d categories, %d items\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Source, r.Categories, r.Items)
	}

	return nil
}

// requireArchive reports an error when no archive database is configured.
func requireArchive(deps *Dependencies) error {
	if deps.Runs != nil {
		return nil
	}
	fmt.Fprintln(deps.Stderr, "error: no archive configured. Pass --db or set NEWSFEED_DB.")
	return newsfeed.Errorf(newsfeed.EINVALID, "no archive configured")
}
