package mock

import (
	"context"

	"github.com/fwojciec/sitelens"
)

var _ sitelens.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of sitelens.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) *sitelens.FetchResult
	CloseFn  func() error
}

func (s *Scraper) Scrape(ctx context.Context, url string) *sitelens.FetchResult {
	return s.ScrapeFn(ctx, url)
}

func (s *Scraper) Close() error {
	return s.CloseFn()
}
