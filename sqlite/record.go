package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/sitelens"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitelens.RecordService = (*RecordService)(nil)

// RecordService implements sitelens.RecordService using SQLite.
// Content and metadata are stored as JSON columns.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord creates a new record.
func (s *RecordService) CreateRecord(ctx context.Context, record *sitelens.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	content, err := marshalColumn(record.Content, "content")
	if err != nil {
		return err
	}
	metadata, err := marshalColumn(record.Metadata, "metadata")
	if err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()
	record.ContentHash = hashContent([]byte(content))

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, url, content, metadata, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.URL, content, metadata, record.ContentHash, formatTime(record.CreatedAt))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*sitelens.Record, error) {
	records, err := s.FindRecords(ctx, sitelens.RecordFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, sitelens.Errorf(sitelens.ENOTFOUND, "record not found")
	}
	return records[0], nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter sitelens.RecordFilter) ([]*sitelens.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, content, metadata, content_hash, created_at FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*sitelens.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record and its prompt logs.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sitelens.Errorf(sitelens.ENOTFOUND, "record not found")
	}

	return nil
}

func scanRecord(rows *sql.Rows) (*sitelens.Record, error) {
	var record sitelens.Record
	var content, metadata, createdAt string

	if err := rows.Scan(&record.ID, &record.URL, &content, &metadata, &record.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	if err := unmarshalColumn(content, &record.Content, "content"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(metadata, &record.Metadata, "metadata"); err != nil {
		return nil, err
	}

	var err error
	record.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &record, nil
}
