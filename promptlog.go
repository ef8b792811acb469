package sitelens

import (
	"context"
	"time"
)

// PromptLog records a generated text and its token cost.
type PromptLog struct {
	ID string `json:"id"`

	// RecordID links a summary to the record it analyzed.
	// Empty for free-form prompts.
	RecordID string `json:"recordId,omitempty"`

	Prompt     string    `json:"prompt"`
	Output     string    `json:"output"`
	TokensUsed int       `json:"tokensUsed"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the prompt log contains invalid fields.
func (l *PromptLog) Validate() error {
	if l.Prompt == "" {
		return Errorf(EINVALID, "prompt text required")
	}
	if l.Output == "" {
		return Errorf(EINVALID, "generated output required")
	}
	return nil
}

// PromptLogService represents a service for managing prompt logs.
type PromptLogService interface {
	// CreatePromptLog creates a new prompt log.
	CreatePromptLog(ctx context.Context, log *PromptLog) error

	// FindPromptLogs retrieves prompt logs matching the filter, newest first.
	FindPromptLogs(ctx context.Context, filter PromptLogFilter) ([]*PromptLog, error)

	// DeletePromptLog permanently removes a prompt log.
	// Returns ENOTFOUND if the prompt log does not exist.
	DeletePromptLog(ctx context.Context, id string) error
}

// PromptLogFilter represents a filter for FindPromptLogs.
type PromptLogFilter struct {
	ID       *string `json:"id"`
	RecordID *string `json:"recordId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
