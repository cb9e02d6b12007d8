package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/newsfeed"
	"github.com/fwojciec/newsfeed/fs"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, err := deps.Loader.Load(deps.Ctx, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsfeed.ErrorMessage(err))
		return err
	}

	entries, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsfeed.ErrorMessage(err))
		return err
	}
	feed := newsfeed.Aggregate(entries)

	fmt.Fprint(deps.Stdout, newsfeed.FormatSummary(feed))

	if !c.Quiet {
		fmt.Fprintln(deps.Stdout, "\nData structure:")
		if err := fs.EncodeReport(deps.Stdout, feed); err != nil {
			return err
		}
	}

	if err := deps.Reports.WriteReport(deps.Ctx, feed); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write %s\n", c.Output)
		return err
	}

	path, err := filepath.Abs(c.Output)
	if err != nil {
		path = c.Output
	}
	fmt.Fprintf(deps.Stdout, "\nResult saved to %s\n", path)

	if deps.Runs != nil {
		run := &newsfeed.Run{Source: c.Input}
		if err := deps.Runs.CreateRun(deps.Ctx, run, html, feed); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsfeed.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Archived as run %s\n", run.ID)
	}

	return nil
}
