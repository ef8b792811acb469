package sitelens_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/sitelens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Parallel()

	t.Run("copies content and metadata of a success", func(t *testing.T) {
		t.Parallel()

		content := &sitelens.FieldRecord{Name: "Acme"}
		metadata := &sitelens.Metadata{Title: "Acme"}

		record, err := sitelens.NewRecord("https://acme.example", sitelens.Success(content, metadata))

		require.NoError(t, err)
		assert.Equal(t, "https://acme.example", record.URL)
		assert.Same(t, content, record.Content)
		assert.Same(t, metadata, record.Metadata)
		assert.NoError(t, record.Validate())
	})

	t.Run("rejects a failure", func(t *testing.T) {
		t.Parallel()

		_, err := sitelens.NewRecord("https://acme.example", sitelens.Failure(errors.New("refused")))

		require.Error(t, err)
		assert.Equal(t, sitelens.EINVALID, sitelens.ErrorCode(err))
	})

	t.Run("rejects nil", func(t *testing.T) {
		t.Parallel()

		_, err := sitelens.NewRecord("https://acme.example", nil)

		assert.Equal(t, sitelens.EINVALID, sitelens.ErrorCode(err))
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		err := (&sitelens.Record{Content: &sitelens.FieldRecord{}}).Validate()

		assert.Equal(t, sitelens.EINVALID, sitelens.ErrorCode(err))
		assert.Contains(t, sitelens.ErrorMessage(err), "URL")
	})

	t.Run("requires content", func(t *testing.T) {
		t.Parallel()

		err := (&sitelens.Record{URL: "https://acme.example"}).Validate()

		assert.Equal(t, sitelens.EINVALID, sitelens.ErrorCode(err))
		assert.Contains(t, sitelens.ErrorMessage(err), "content")
	})
}

func TestPromptLog_Validate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sitelens.EINVALID, sitelens.ErrorCode((&sitelens.PromptLog{Output: "o"}).Validate()))
	assert.Equal(t, sitelens.EINVALID, sitelens.ErrorCode((&sitelens.PromptLog{Prompt: "p"}).Validate()))
	assert.NoError(t, (&sitelens.PromptLog{Prompt: "p", Output: "o"}).Validate())
}
