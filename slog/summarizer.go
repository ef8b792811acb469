package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitelens"
)

var (
	_ sitelens.Summarizer = (*LoggingSummarizer)(nil)
	_ sitelens.Prompter   = (*LoggingPrompter)(nil)
)

// LoggingSummarizer wraps a Summarizer with logging of token usage.
type LoggingSummarizer struct {
	next   sitelens.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next sitelens.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer.
func (s *LoggingSummarizer) Summarize(ctx context.Context, in sitelens.SummaryInput) (text string, tokens int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"name", in.Name,
			"source", in.Source,
			"tokens", tokens,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, in)
}

// LoggingPrompter wraps a Prompter with logging of token usage.
type LoggingPrompter struct {
	next   sitelens.Prompter
	logger *slog.Logger
}

// NewLoggingPrompter creates a new LoggingPrompter.
func NewLoggingPrompter(next sitelens.Prompter, logger *slog.Logger) *LoggingPrompter {
	return &LoggingPrompter{next: next, logger: logger}
}

// Prompt delegates to the wrapped prompter.
func (p *LoggingPrompter) Prompt(ctx context.Context, prompt, background string) (text string, tokens int, err error) {
	defer func(begin time.Time) {
		p.logger.Info("prompt",
			"prompt_bytes", len(prompt),
			"with_context", background != "",
			"tokens", tokens,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Prompt(ctx, prompt, background)
}
