package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptLogService_CreatePromptLog(t *testing.T) {
	t.Parallel()

	t.Run("creates free-form prompt log", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPromptLogService(setupTestDB(t))
		ctx := context.Background()

		log := &sitelens.PromptLog{Prompt: "hello", Output: "hi there", TokensUsed: 7}
		require.NoError(t, svc.CreatePromptLog(ctx, log))

		assert.NotEmpty(t, log.ID)
		assert.False(t, log.CreatedAt.IsZero())

		logs, err := svc.FindPromptLogs(ctx, sitelens.PromptLogFilter{ID: &log.ID})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Empty(t, logs[0].RecordID)
		assert.Equal(t, "hello", logs[0].Prompt)
		assert.Equal(t, "hi there", logs[0].Output)
		assert.Equal(t, 7, logs[0].TokensUsed)
	})

	t.Run("links summary to record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		record := createTestRecord(t, sqlite.NewRecordService(db), "https://acme.example", "Acme")
		svc := sqlite.NewPromptLogService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreatePromptLog(ctx, &sitelens.PromptLog{
			RecordID: record.ID, Prompt: "analyze", Output: "summary",
		}))

		logs, err := svc.FindPromptLogs(ctx, sitelens.PromptLogFilter{RecordID: &record.ID})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, record.ID, logs[0].RecordID)
	})

	t.Run("rejects unknown record", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPromptLogService(setupTestDB(t))

		err := svc.CreatePromptLog(context.Background(), &sitelens.PromptLog{
			RecordID: "missing", Prompt: "analyze", Output: "summary",
		})
		require.Error(t, err)
		assert.Equal(t, sitelens.ENOTFOUND, sitelens.ErrorCode(err))
	})

	t.Run("returns error for invalid prompt log", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPromptLogService(setupTestDB(t))

		err := svc.CreatePromptLog(context.Background(), &sitelens.PromptLog{Prompt: "no output"})
		require.Error(t, err)
		assert.Equal(t, sitelens.EINVALID, sitelens.ErrorCode(err))
	})
}

func TestPromptLogService_FindPromptLogs(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewPromptLogService(setupTestDB(t))
	ctx := context.Background()
	for _, p := range []string{"first", "second", "third"} {
		require.NoError(t, svc.CreatePromptLog(ctx, &sitelens.PromptLog{Prompt: p, Output: "out"}))
	}

	logs, err := svc.FindPromptLogs(ctx, sitelens.PromptLogFilter{Limit: 2})
	require.NoError(t, err)

	require.Len(t, logs, 2)
	assert.Equal(t, "third", logs[0].Prompt)
	assert.Equal(t, "second", logs[1].Prompt)
}

func TestPromptLogService_DeletePromptLog(t *testing.T) {
	t.Parallel()

	t.Run("deletes prompt log", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPromptLogService(setupTestDB(t))
		ctx := context.Background()
		log := &sitelens.PromptLog{Prompt: "p", Output: "o"}
		require.NoError(t, svc.CreatePromptLog(ctx, log))

		require.NoError(t, svc.DeletePromptLog(ctx, log.ID))

		logs, err := svc.FindPromptLogs(ctx, sitelens.PromptLogFilter{})
		require.NoError(t, err)
		assert.Empty(t, logs)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPromptLogService(setupTestDB(t))

		err := svc.DeletePromptLog(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, sitelens.ENOTFOUND, sitelens.ErrorCode(err))
	})
}
