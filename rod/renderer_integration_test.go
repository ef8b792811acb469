//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	// Serve a page that uses JavaScript to add content
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
<div id="content">Loading...</div>
<script>
document.getElementById('content').textContent = 'JavaScript Rendered';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	r := rod.NewRenderer()
	defer r.Close()

	page, err := r.Render(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, page.HTML, "JavaScript Rendered")
	assert.NotContains(t, page.HTML, "Loading...")
}

func TestRenderer_Render_ReportsRedirectedURL(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Final</h1></body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	r := rod.NewRenderer()
	defer r.Close()

	page, err := r.Render(context.Background(), srv.URL+"/start")

	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/final", page.URL)
	assert.Contains(t, page.HTML, "Final")
}

func TestRenderer_Render_SlowPageTimesOut(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
	}))
	defer srv.Close()

	r := rod.NewRenderer(rod.WithNavigationTimeout(100 * time.Millisecond))
	defer r.Close()

	_, err := r.Render(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRenderer_Render_ReusesBrowser(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>ok</body></html>`))
	}))
	defer srv.Close()

	r := rod.NewRenderer()
	defer r.Close()

	_, err := r.Render(context.Background(), srv.URL)
	require.NoError(t, err)
	first := r.LauncherPID()
	require.NotZero(t, first)

	_, err = r.Render(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, first, r.LauncherPID())
}

func TestRenderer_Render_RecyclesAfterMaxPages(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>ok</body></html>`))
	}))
	defer srv.Close()

	r := rod.NewRenderer(rod.WithMaxPages(2))
	defer r.Close()

	for range 2 {
		_, err := r.Render(context.Background(), srv.URL)
		require.NoError(t, err)
	}
	first := r.LauncherPID()

	_, err := r.Render(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.NotEqual(t, first, r.LauncherPID())
}

func TestRenderer_Render_Concurrent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>` + r.URL.Path + `</body></html>`))
	}))
	defer srv.Close()

	r := rod.NewRenderer()
	defer r.Close()

	paths := []string{"/a", "/b", "/c", "/d"}
	results := make([]*sitelens.RenderedPage, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = r.Render(context.Background(), srv.URL+p)
		}()
	}
	wg.Wait()

	for i, p := range paths {
		require.NoError(t, errs[i])
		assert.Contains(t, results[i].HTML, p)
	}
}

func TestRenderer_Render_Stealth(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="wd"></div>
<script>document.getElementById('wd').textContent = 'webdriver=' + navigator.webdriver;</script>
</body></html>`))
	}))
	defer srv.Close()

	r := rod.NewRenderer(rod.WithStealth(true))
	defer r.Close()

	page, err := r.Render(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.False(t, strings.Contains(page.HTML, "webdriver=true"))
}

func TestRenderer_Render_WaitsForDeferredScripts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><script src="/app.js" defer></script></head>
<body><div id="root"></div></body>
</html>`))
	})
	mux.HandleFunc("/app.js", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Header().Set("Content-Type", "application/javascript")
		_, _ = w.Write([]byte(`document.getElementById('root').innerHTML = '<h1 class="profile-name">Acme Robotics</h1>';`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	r := rod.NewRenderer()
	defer r.Close()

	for range 5 {
		page, err := r.Render(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, page.HTML, "Acme Robotics")
	}
}

func TestRenderer_Render_MissingBodyIsRenderTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Stalled</title>`))
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	r := rod.NewRenderer(rod.WithWaitTimeout(200 * time.Millisecond))
	defer r.Close()

	_, err := r.Render(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, sitelens.ETIMEOUT, sitelens.ErrorCode(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
