package sitelens

import "context"

// SummaryInput is the subset of a FieldRecord sent for summarization.
type SummaryInput struct {
	Name     string
	About    string
	Industry string
	Source   string
}

// NewSummaryInput builds a SummaryInput from a field record.
// A nil record yields empty values.
func NewSummaryInput(r *FieldRecord) SummaryInput {
	if r == nil {
		return SummaryInput{}
	}
	return SummaryInput{
		Name:     r.Name,
		About:    r.About,
		Industry: r.Industry,
		Source:   r.Source,
	}
}

// Summarizer generates a natural language analysis of extracted fields.
type Summarizer interface {
	// Summarize returns the generated text and the number of tokens used.
	Summarize(ctx context.Context, in SummaryInput) (text string, tokensUsed int, err error)
}

// Prompter answers free-form prompts, optionally grounded in background text.
type Prompter interface {
	// Prompt returns the generated text and the number of tokens used.
	// An empty background sends the prompt as is.
	Prompt(ctx context.Context, prompt, background string) (text string, tokensUsed int, err error)
}
