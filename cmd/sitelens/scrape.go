package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/gemini"
	"github.com/fwojciec/sitelens/scrape"
)

// scrapeOutput is one line of scrape output.
type scrapeOutput struct {
	URL string `json:"url"`
	*sitelens.FetchResult
	RecordID   string `json:"record_id,omitempty"`
	Analysis   string `json:"analysis,omitempty"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	batch := &scrape.Batch{
		Scraper:     deps.Scraper,
		RateLimiter: deps.RateLimiter,
		Concurrency: c.Concurrency,
	}

	progress := func(event scrape.ProgressEvent) {
		if event.Type == scrape.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, event.Error)
		}
	}
	if len(c.URLs) == 1 {
		progress = nil
	}

	results := batch.ScrapeAll(deps.Ctx, c.URLs, progress)

	enc := json.NewEncoder(deps.Stdout)
	var failed, unprocessed int
	var firstErr error
	for i, result := range results {
		out := scrapeOutput{URL: c.URLs[i], FetchResult: result}

		if !result.OK() {
			failed++
		} else if err := c.postProcess(deps, &out); err != nil {
			// The fetch succeeded; report the save or analysis error and
			// still print the result.
			fmt.Fprintf(deps.Stderr, "  %s: %s\n", out.URL, sitelens.ErrorMessage(err))
			unprocessed++
			if firstErr == nil {
				firstErr = err
			}
		}

		if err := enc.Encode(out); err != nil {
			return err
		}
	}

	if failed > 0 {
		fmt.Fprintf(deps.Stderr, "error: %d of %d URLs failed\n", failed, len(results))
		return sitelens.Errorf(sitelens.ERETRIEVAL, "%d of %d URLs failed", failed, len(results))
	}
	if unprocessed > 0 {
		fmt.Fprintf(deps.Stderr, "error: %d of %d results could not be saved or analyzed\n", unprocessed, len(results))
		return sitelens.WrapError(sitelens.ErrorCode(firstErr), firstErr, "%d of %d results could not be saved or analyzed", unprocessed, len(results))
	}
	return nil
}

// postProcess stores and analyzes a successful result as requested.
func (c *ScrapeCmd) postProcess(deps *Dependencies, out *scrapeOutput) error {
	if c.Save {
		record, err := sitelens.NewRecord(out.URL, out.FetchResult)
		if err != nil {
			return err
		}
		if err := deps.Records.CreateRecord(deps.Ctx, record); err != nil {
			return err
		}
		out.RecordID = record.ID
	}

	if c.Analyze {
		in := sitelens.NewSummaryInput(out.Content)
		text, tokens, err := deps.Summarizer.Summarize(deps.Ctx, in)
		if err != nil {
			return err
		}
		out.Analysis = text
		out.TokensUsed = tokens

		if text == "" {
			return nil
		}
		if err := deps.PromptLogs.CreatePromptLog(deps.Ctx, &sitelens.PromptLog{
			RecordID:   out.RecordID,
			Prompt:     gemini.BuildSummaryPrompt(in),
			Output:     text,
			TokensUsed: tokens,
		}); err != nil {
			return err
		}
	}

	return nil
}
