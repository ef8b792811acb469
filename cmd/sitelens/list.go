package main

import (
	"fmt"

	"github.com/fwojciec/sitelens"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := sitelens.RecordFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'sitelens scrape --save' to store one.")
		return nil
	}

	for _, r := range records {
		var name string
		if r.Content != nil {
			name = r.Content.Name
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.URL, name)
	}

	return nil
}
