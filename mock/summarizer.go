package mock

import (
	"context"

	"github.com/fwojciec/sitelens"
)

var (
	_ sitelens.Summarizer = (*Summarizer)(nil)
	_ sitelens.Prompter   = (*Prompter)(nil)
)

// Summarizer is a mock implementation of sitelens.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, in sitelens.SummaryInput) (string, int, error)
}

func (s *Summarizer) Summarize(ctx context.Context, in sitelens.SummaryInput) (string, int, error) {
	return s.SummarizeFn(ctx, in)
}

// Prompter is a mock implementation of sitelens.Prompter.
type Prompter struct {
	PromptFn func(ctx context.Context, prompt, background string) (string, int, error)
}

func (p *Prompter) Prompt(ctx context.Context, prompt, background string) (string, int, error) {
	return p.PromptFn(ctx, prompt, background)
}
