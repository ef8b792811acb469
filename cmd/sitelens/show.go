package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/sitelens"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	record, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		if sitelens.ErrorCode(err) == sitelens.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'sitelens list' to see stored records.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}
