package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitelens"
)

// Ensure LoggingRenderPolicy implements sitelens.RenderPolicy.
var _ sitelens.RenderPolicy = (*LoggingRenderPolicy)(nil)

// LoggingRenderPolicy wraps a RenderPolicy with debug logging of each
// render decision.
type LoggingRenderPolicy struct {
	next   sitelens.RenderPolicy
	logger *slog.Logger
}

// NewLoggingRenderPolicy creates a new LoggingRenderPolicy.
func NewLoggingRenderPolicy(next sitelens.RenderPolicy, logger *slog.Logger) *LoggingRenderPolicy {
	return &LoggingRenderPolicy{next: next, logger: logger}
}

// NeedsRendering logs the decision and returns it.
func (p *LoggingRenderPolicy) NeedsRendering(doc sitelens.Document) bool {
	begin := time.Now()
	render := p.next.NeedsRendering(doc)
	p.logger.Info("render decision",
		"render", render,
		"duration", time.Since(begin),
	)
	return render
}
