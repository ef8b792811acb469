package main

import (
	"fmt"

	"github.com/fwojciec/sitelens"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitelens.Errorf(sitelens.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		if sitelens.ErrorCode(err) == sitelens.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'sitelens list' to see stored records.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %s\n", c.ID)
	return nil
}
