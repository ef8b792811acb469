// Package slog decorates sitelens services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitelens"
)

var (
	_ sitelens.Fetcher  = (*LoggingFetcher)(nil)
	_ sitelens.Renderer = (*LoggingRenderer)(nil)
)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   sitelens.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitelens.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   sitelens.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next sitelens.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render logs the URL being rendered, where the browser ended up, and
// delegates to the wrapped renderer.
func (r *LoggingRenderer) Render(ctx context.Context, url string) (page *sitelens.RenderedPage, err error) {
	defer func(begin time.Time) {
		var finalURL string
		var n int
		if page != nil {
			finalURL = page.URL
			n = len(page.HTML)
		}
		r.logger.Info("render",
			"url", url,
			"final_url", finalURL,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, url)
}

// Close logs browser shutdown and delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() (err error) {
	defer func() {
		r.logger.Info("renderer closed", "err", err)
	}()
	return r.next.Close()
}
