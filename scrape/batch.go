package scrape

import (
	"context"

	"github.com/fwojciec/sitelens"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs scraped in parallel when
// Batch.Concurrency is not set.
const DefaultConcurrency = 4

// Batch scrapes many URLs with bounded concurrency.
type Batch struct {
	Scraper     sitelens.Scraper
	RateLimiter sitelens.HostLimiter // optional
	Concurrency int
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

type batchResult struct {
	position int
	result   *sitelens.FetchResult
}

// ScrapeAll scrapes every URL and returns the results in input order.
// Repeated URLs are scraped once and share a result. The progress
// callback, if provided, is invoked from the calling goroutine only.
func (b *Batch) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) []*sitelens.FetchResult {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// Unique URLs in first-seen order.
	positions := make(map[string]int, len(urls))
	var unique []string
	for _, u := range urls {
		if _, ok := positions[u]; ok {
			continue
		}
		positions[u] = len(unique)
		unique = append(unique, u)
	}

	total := len(unique)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan batchResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range unique {
			g.Go(func() error {
				resultCh <- batchResult{position: i, result: b.scrapeOne(gctx, u)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]*sitelens.FetchResult, total)
	var completed int
	for r := range resultCh {
		completed++
		results[r.position] = r.result
		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       unique[r.position],
		}
		if !r.result.OK() {
			event.Type = ProgressFailed
			event.Error = r.result.Error
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	out := make([]*sitelens.FetchResult, len(urls))
	for i, u := range urls {
		out[i] = results[positions[u]]
	}
	return out
}

func (b *Batch) scrapeOne(ctx context.Context, rawURL string) *sitelens.FetchResult {
	if b.RateLimiter != nil {
		if err := b.RateLimiter.Wait(ctx, rawURL); err != nil {
			return sitelens.Failure(sitelens.WrapError(sitelens.ERETRIEVAL, err, "rate limit wait for %s", rawURL))
		}
	}
	return b.Scraper.Scrape(ctx, rawURL)
}
