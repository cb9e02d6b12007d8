package main

import (
	"fmt"

	"github.com/fwojciec/newsfeed"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return newsfeed.Errorf(newsfeed.EINVALID, "use --force to confirm deletion")
	}

	if err := requireArchive(deps); err != nil {
		return err
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
		if newsfeed.ErrorCode(err) == newsfeed.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'newsfeed history' to see archived runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsfeed.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
	return nil
}
