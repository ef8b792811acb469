package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/mock"
	sitelensslog "github.com/fwojciec/sitelens/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := sitelensslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/about")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/about")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := sitelensslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/about")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := sitelensslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

func TestLoggingRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("logs final URL after redirects", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Renderer{
			RenderFn: func(ctx context.Context, url string) (*sitelens.RenderedPage, error) {
				return &sitelens.RenderedPage{URL: "https://example.com/final", HTML: "<body></body>"}, nil
			},
		}

		renderer := sitelensslog.NewLoggingRenderer(inner, logger)
		page, err := renderer.Render(context.Background(), "https://example.com/start")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/final", page.URL)
		output := buf.String()
		assert.Contains(t, output, "msg=render")
		assert.Contains(t, output, "url=https://example.com/start")
		assert.Contains(t, output, "final_url=https://example.com/final")
		assert.Contains(t, output, "bytes=13")
	})

	t.Run("logs error without a page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Renderer{
			RenderFn: func(ctx context.Context, url string) (*sitelens.RenderedPage, error) {
				return nil, sitelens.Errorf(sitelens.ETIMEOUT, "waiting for body")
			},
		}

		renderer := sitelensslog.NewLoggingRenderer(inner, logger)
		_, err := renderer.Render(context.Background(), "https://example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "err=\"waiting for body\"")
	})

	t.Run("logs close", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Renderer{CloseFn: func() error { return nil }}

		require.NoError(t, sitelensslog.NewLoggingRenderer(inner, logger).Close())
		assert.Contains(t, buf.String(), "renderer closed")
	})
}

func TestLoggingRenderPolicy_NeedsRendering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RenderPolicy{
		NeedsRenderingFn: func(doc sitelens.Document) bool { return true },
	}

	policy := sitelensslog.NewLoggingRenderPolicy(inner, logger)

	assert.True(t, policy.NeedsRendering(&mock.Document{}))
	output := buf.String()
	assert.Contains(t, output, "render decision")
	assert.Contains(t, output, "render=true")
	assert.Contains(t, output, "duration=")
}
