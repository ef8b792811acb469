package rod_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Renderer implements sitelens.Renderer.
var _ sitelens.Renderer = (*rod.Renderer)(nil)

func TestRenderer_Close_WithoutRender(t *testing.T) {
	t.Parallel()

	r := rod.NewRenderer()

	assert.Zero(t, r.LauncherPID(), "no browser should be launched before first render")
	require.NoError(t, r.Close())
	assert.Zero(t, r.LauncherPID())
}

func TestRenderer_Close_Idempotent(t *testing.T) {
	t.Parallel()

	r := rod.NewRenderer()

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
}

func TestRenderer_Render_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	r := rod.NewRenderer()
	require.NoError(t, r.Close())

	_, err := r.Render(context.Background(), "http://example.com")

	require.Error(t, err)
	assert.Equal(t, sitelens.EINVALID, sitelens.ErrorCode(err))
	assert.Contains(t, sitelens.ErrorMessage(err), "closed")
	assert.Zero(t, r.LauncherPID(), "render after close must not launch a browser")
}

func TestRenderer_Render_CanceledContext(t *testing.T) {
	t.Parallel()

	r := rod.NewRenderer()
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, "http://example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, sitelens.ERETRIEVAL, sitelens.ErrorCode(err))
	assert.Zero(t, r.LauncherPID(), "canceled render must not launch a browser")
}

func TestRenderer_Render_LaunchFailure(t *testing.T) {
	t.Parallel()

	r := rod.NewRenderer(rod.WithBrowserBin("/nonexistent/chrome"))
	defer r.Close()

	_, err := r.Render(context.Background(), "http://example.com")

	require.Error(t, err)
	assert.Equal(t, sitelens.EINTERNAL, sitelens.ErrorCode(err))
	assert.Zero(t, r.LauncherPID())
}
