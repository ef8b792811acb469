package gemini

import (
	"context"

	"github.com/fwojciec/sitelens"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// fallbackTokenizerModel is used when the local tokenizer has no
// vocabulary for the configured model. Gemini models share a tokenizer,
// so counts stay close.
const fallbackTokenizerModel = "gemini-2.0-flash"

var _ sitelens.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens locally using the Gemini tokenizer, without
// calling the API.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		if model == fallbackTokenizerModel {
			return nil, sitelens.WrapError(sitelens.EINTERNAL, err, "loading tokenizer for %s", model)
		}
		return NewTokenCounter(fallbackTokenizerModel)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}, nil)
	if err != nil {
		return 0, sitelens.WrapError(sitelens.EINTERNAL, err, "counting tokens")
	}

	return int(result.TotalTokens), nil
}
