package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/sitelens"
)

// Run executes the prompt command.
func (c *PromptCmd) Run(deps *Dependencies) error {
	background := c.Context
	if c.Record != "" {
		record, err := deps.Records.FindRecordByID(deps.Ctx, c.Record)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
			return err
		}
		b, err := json.Marshal(record.Content)
		if err != nil {
			return err
		}
		if background != "" {
			background += "\n\n"
		}
		background += string(b)
	}

	text, tokens, err := deps.Prompter.Prompt(deps.Ctx, c.Text, background)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, text)

	if text == "" {
		return nil
	}
	if err := deps.PromptLogs.CreatePromptLog(deps.Ctx, &sitelens.PromptLog{
		RecordID:   c.Record,
		Prompt:     c.Text,
		Output:     text,
		TokensUsed: tokens,
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
		return err
	}

	return nil
}
