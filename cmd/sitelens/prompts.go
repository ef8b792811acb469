package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sitelens"
)

// maxPromptPreview is the number of prompt characters shown per line.
const maxPromptPreview = 60

// Run executes the prompts command.
func (c *PromptsCmd) Run(deps *Dependencies) error {
	filter := sitelens.PromptLogFilter{Limit: c.Limit}
	if c.Record != "" {
		filter.RecordID = &c.Record
	}

	logs, err := deps.PromptLogs.FindPromptLogs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
		return err
	}

	if len(logs) == 0 {
		fmt.Fprintln(deps.Stdout, "No prompts found.")
		return nil
	}

	for _, l := range logs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d tokens  %s\n",
			l.ID, l.CreatedAt.Format("2006-01-02 15:04"), l.TokensUsed, preview(l.Prompt))
	}

	return nil
}

// preview returns the first line of s, truncated to maxPromptPreview runes.
func preview(s string) string {
	s, _, _ = strings.Cut(strings.TrimSpace(s), "\n")
	r := []rune(s)
	if len(r) > maxPromptPreview {
		return string(r[:maxPromptPreview]) + "..."
	}
	return s
}
