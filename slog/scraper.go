package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitelens"
)

// Ensure LoggingScraper implements sitelens.Scraper.
var _ sitelens.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging of every result.
type LoggingScraper struct {
	next   sitelens.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next sitelens.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the outcome. Failures
// are logged at warn level with their error code.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) *sitelens.FetchResult {
	begin := time.Now()
	result := s.next.Scrape(ctx, url)

	if !result.OK() {
		s.logger.Warn("scrape",
			"url", url,
			"status", result.Status,
			"code", result.Code,
			"duration", time.Since(begin),
			"err", result.Error,
		)
		return result
	}

	var pageType string
	if result.Content != nil {
		pageType = result.Content.PageType
	}
	s.logger.Info("scrape",
		"url", url,
		"status", result.Status,
		"page_type", pageType,
		"duration", time.Since(begin),
	)
	return result
}

// Close delegates to the wrapped scraper.
func (s *LoggingScraper) Close() error {
	return s.next.Close()
}
