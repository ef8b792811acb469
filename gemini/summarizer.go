// Package gemini generates analyses of scraped records and answers custom
// prompts using Google Gemini.
package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/sitelens"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Temperature used for every generation.
const Temperature = 0.7

var (
	_ sitelens.Summarizer = (*Summarizer)(nil)
	_ sitelens.Prompter   = (*Summarizer)(nil)
)

// Summarizer implements sitelens.Summarizer and sitelens.Prompter using
// Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
	tokens sitelens.TokenCounter
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithModel sets the Gemini model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		if model != "" {
			s.model = model
		}
	}
}

// WithTokenCounter sets the counter used when the API response carries no
// usage metadata.
func WithTokenCounter(tc sitelens.TokenCounter) Option {
	return func(s *Summarizer) {
		s.tokens = tc
	}
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client, opts ...Option) *Summarizer {
	s := &Summarizer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize produces an analysis of a scraped entity.
func (s *Summarizer) Summarize(ctx context.Context, in sitelens.SummaryInput) (string, int, error) {
	return s.generate(ctx, BuildSummaryPrompt(in))
}

// Prompt answers a free-form prompt, optionally with background context.
func (s *Summarizer) Prompt(ctx context.Context, prompt, background string) (string, int, error) {
	if prompt == "" {
		return "", 0, sitelens.Errorf(sitelens.EINVALID, "prompt required")
	}
	return s.generate(ctx, BuildCustomPrompt(prompt, background))
}

func (s *Summarizer) generate(ctx context.Context, prompt string) (string, int, error) {
	if s.client == nil {
		return "", 0, sitelens.Errorf(sitelens.EINTERNAL, "gemini client not configured")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", 0, err
	}
	if result == nil {
		return "", 0, sitelens.Errorf(sitelens.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	return text, TokensUsed(ctx, result, s.tokens, prompt), nil
}

// TokensUsed returns the total token count reported by the API. When the
// response has no usage metadata, the prompt and output are counted with
// counter instead; a nil counter or a counting error yields zero.
func TokensUsed(ctx context.Context, result *genai.GenerateContentResponse, counter sitelens.TokenCounter, prompt string) int {
	if result != nil && result.UsageMetadata != nil && result.UsageMetadata.TotalTokenCount > 0 {
		return int(result.UsageMetadata.TotalTokenCount)
	}
	if counter == nil {
		return 0
	}
	var output string
	if result != nil {
		output = result.Text()
	}
	n, err := counter.CountTokens(ctx, prompt+"\n"+output)
	if err != nil {
		return 0
	}
	return n
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(Temperature)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}

// BuildSummaryPrompt builds the analysis prompt for a scraped entity.
func BuildSummaryPrompt(in sitelens.SummaryInput) string {
	return fmt.Sprintf(`Analyze the following scraped data and provide insights:

Name: %s
About: %s
Industry: %s
Source: %s

Please provide:
1. A brief summary of the entity
2. Key points about their business/profile
3. Potential opportunities or areas of interest
4. Recommended follow-up actions`, in.Name, in.About, in.Industry, in.Source)
}

// BuildCustomPrompt wraps a user prompt with optional background context.
// Without context the prompt is sent unchanged.
func BuildCustomPrompt(prompt, background string) string {
	if background == "" {
		return prompt
	}
	return fmt.Sprintf("Context: %s\n\nUser Query: %s\n\nPlease provide a detailed response considering the given context.", background, prompt)
}
