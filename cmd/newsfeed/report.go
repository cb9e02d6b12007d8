package main

import (
	"fmt"

	"github.com/fwojciec/newsfeed"
	"github.com/fwojciec/newsfeed/fs"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	feed, err := fs.ReadReport(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsfeed.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, newsfeed.FormatSummary(feed))
	if !c.JSON {
		return nil
	}
	fmt.Fprintln(deps.Stdout)
	return fs.EncodeReport(deps.Stdout, feed)
}
