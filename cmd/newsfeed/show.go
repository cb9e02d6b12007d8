package main

import (
	"fmt"

	"github.com/fwojciec/newsfeed"
	"github.com/fwojciec/newsfeed/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if err := requireArchive(deps); err != nil {
		return err
	}

	feed, err := deps.Runs.FindFeedByRunID(deps.Ctx, c.ID)
	if err != nil {
		if newsfeed.ErrorCode(err) == newsfeed.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'newsfeed history' to see archived runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsfeed.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, newsfeed.FormatSummary(feed))
	fmt.Fprintln(deps.Stdout)
	return fs.EncodeReport(deps.Stdout, feed)
}
