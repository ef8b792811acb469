package sitelens

import (
	"context"
	"time"
)

// Record is a stored successful scrape.
type Record struct {
	ID          string       `json:"id"`
	URL         string       `json:"url"`
	Content     *FieldRecord `json:"content"`
	Metadata    *Metadata    `json:"metadata"`
	ContentHash string       `json:"contentHash"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Content == nil {
		return Errorf(EINVALID, "record content required")
	}
	return nil
}

// NewRecord builds a Record from a successful fetch result.
// Returns EINVALID if the result is a failure.
func NewRecord(url string, result *FetchResult) (*Record, error) {
	if result == nil || !result.OK() {
		return nil, Errorf(EINVALID, "cannot store failed fetch of %s", url)
	}
	return &Record{
		URL:      url,
		Content:  result.Content,
		Metadata: result.Metadata,
	}, nil
}

// RecordService represents a service for managing stored records.
type RecordService interface {
	// CreateRecord creates a new record, assigning its ID, hash and timestamp.
	CreateRecord(ctx context.Context, record *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
