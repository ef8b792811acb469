package sitelens

import "context"

// Status is the outcome of a fetch.
type Status string

// Fetch outcomes.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FetchResult is the envelope returned for every fetch. A success carries
// Content and Metadata; a failure carries Error. Construct it with Success
// or Failure and treat it as immutable afterwards.
type FetchResult struct {
	Status   Status       `json:"status"`
	Content  *FieldRecord `json:"content,omitempty"`
	Metadata *Metadata    `json:"metadata,omitempty"`
	Error    string       `json:"error,omitempty"`

	// Code is the application error code of a failure.
	Code string `json:"-"`
}

// Success returns a successful FetchResult.
func Success(content *FieldRecord, metadata *Metadata) *FetchResult {
	return &FetchResult{
		Status:   StatusSuccess,
		Content:  content,
		Metadata: metadata,
	}
}

// Failure returns a failed FetchResult describing err.
func Failure(err error) *FetchResult {
	return &FetchResult{
		Status: StatusError,
		Error:  err.Error(),
		Code:   ErrorCode(err),
	}
}

// OK reports whether the fetch succeeded.
func (r *FetchResult) OK() bool {
	return r.Status == StatusSuccess
}

// Scraper fetches a URL and extracts its fields and metadata.
type Scraper interface {
	// Scrape never returns nil and never panics; every failure is
	// reported through the result envelope.
	Scrape(ctx context.Context, url string) *FetchResult

	// Close releases the retrieval resources. Safe to call more than once.
	Close() error
}
