package mock

import (
	"context"

	"github.com/fwojciec/sitelens"
)

var (
	_ sitelens.RecordService    = (*RecordService)(nil)
	_ sitelens.PromptLogService = (*PromptLogService)(nil)
)

// RecordService is a mock implementation of sitelens.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, record *sitelens.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*sitelens.Record, error)
	FindRecordsFn    func(ctx context.Context, filter sitelens.RecordFilter) ([]*sitelens.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, record *sitelens.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*sitelens.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter sitelens.RecordFilter) ([]*sitelens.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

// PromptLogService is a mock implementation of sitelens.PromptLogService.
type PromptLogService struct {
	CreatePromptLogFn func(ctx context.Context, log *sitelens.PromptLog) error
	FindPromptLogsFn  func(ctx context.Context, filter sitelens.PromptLogFilter) ([]*sitelens.PromptLog, error)
	DeletePromptLogFn func(ctx context.Context, id string) error
}

func (s *PromptLogService) CreatePromptLog(ctx context.Context, log *sitelens.PromptLog) error {
	return s.CreatePromptLogFn(ctx, log)
}

func (s *PromptLogService) FindPromptLogs(ctx context.Context, filter sitelens.PromptLogFilter) ([]*sitelens.PromptLog, error) {
	return s.FindPromptLogsFn(ctx, filter)
}

func (s *PromptLogService) DeletePromptLog(ctx context.Context, id string) error {
	return s.DeletePromptLogFn(ctx, id)
}
