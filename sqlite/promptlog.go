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
var _ sitelens.PromptLogService = (*PromptLogService)(nil)

// PromptLogService implements sitelens.PromptLogService using SQLite.
type PromptLogService struct {
	db *DB
}

// NewPromptLogService creates a new PromptLogService.
func NewPromptLogService(db *DB) *PromptLogService {
	return &PromptLogService{db: db}
}

// CreatePromptLog creates a new prompt log. A non-empty RecordID must
// reference an existing record.
func (s *PromptLogService) CreatePromptLog(ctx context.Context, log *sitelens.PromptLog) error {
	if err := log.Validate(); err != nil {
		return err
	}

	if log.RecordID != "" {
		var exists int
		err := s.db.QueryRowContext(ctx, "SELECT 1 FROM records WHERE id = ?", log.RecordID).Scan(&exists)
		if err == sql.ErrNoRows {
			return sitelens.Errorf(sitelens.ENOTFOUND, "record not found")
		}
		if err != nil {
			return err
		}
	}

	log.ID = uuid.New().String()
	log.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prompt_logs (id, record_id, prompt, output, tokens_used, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, log.ID, nullString(log.RecordID), log.Prompt, log.Output, log.TokensUsed, formatTime(log.CreatedAt))

	return err
}

// FindPromptLogs retrieves prompt logs matching the filter, newest first.
func (s *PromptLogService) FindPromptLogs(ctx context.Context, filter sitelens.PromptLogFilter) ([]*sitelens.PromptLog, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, record_id, prompt, output, tokens_used, created_at FROM prompt_logs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RecordID != nil {
		query.WriteString(" AND record_id = ?")
		args = append(args, *filter.RecordID)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*sitelens.PromptLog
	for rows.Next() {
		var log sitelens.PromptLog
		var recordID sql.NullString
		var createdAt string

		if err := rows.Scan(&log.ID, &recordID, &log.Prompt, &log.Output, &log.TokensUsed, &createdAt); err != nil {
			return nil, err
		}
		log.RecordID = recordID.String

		var err error
		log.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		logs = append(logs, &log)
	}

	return logs, rows.Err()
}

// DeletePromptLog permanently removes a prompt log.
func (s *PromptLogService) DeletePromptLog(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM prompt_logs WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sitelens.Errorf(sitelens.ENOTFOUND, "prompt log not found")
	}

	return nil
}
