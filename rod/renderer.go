// Package rod provides scripted retrieval of pages through a headless
// Chrome browser driven by go-rod.
package rod

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/sitelens"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// DefaultWaitTimeout bounds the wait for the page body after navigation.
const DefaultWaitTimeout = 10 * time.Second

// DefaultNavigationTimeout bounds navigation up to the page load event.
const DefaultNavigationTimeout = 30 * time.Second

// Ensure Renderer implements sitelens.Renderer at compile time.
var _ sitelens.Renderer = (*Renderer)(nil)

// Renderer retrieves rendered HTML using a headless browser.
//
// The browser is launched lazily on the first Render call and reused for
// subsequent calls. Renders are serialized: at most one page navigates at
// a time. Close must be called when the Renderer is no longer needed; it
// is safe whether or not a browser was ever launched.
type Renderer struct {
	waitTimeout time.Duration
	navTimeout  time.Duration
	browserBin  string
	stealth     bool
	maxPages    int

	mu      sync.Mutex
	session *session
	closed  atomic.Bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWaitTimeout sets how long to wait for the page body to appear.
// Defaults to DefaultWaitTimeout (10s).
func WithWaitTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.waitTimeout = d
	}
}

// WithNavigationTimeout sets the timeout for page navigation.
// Defaults to DefaultNavigationTimeout (30s).
func WithNavigationTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.navTimeout = d
	}
}

// WithBrowserBin uses the given Chrome binary instead of letting rod
// find or download one.
func WithBrowserBin(path string) Option {
	return func(r *Renderer) {
		r.browserBin = path
	}
}

// WithStealth injects evasion scripts into every page before navigation.
func WithStealth(enabled bool) Option {
	return func(r *Renderer) {
		r.stealth = enabled
	}
}

// WithMaxPages recycles the browser after n rendered pages. Chrome
// accumulates memory over time and the baseline never returns to initial
// levels, so long batches benefit from a fresh process. Zero disables
// recycling, which is the default.
func WithMaxPages(n int) Option {
	return func(r *Renderer) {
		r.maxPages = n
	}
}

// NewRenderer creates a Renderer. No browser is started until the first
// call to Render.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		waitTimeout: DefaultWaitTimeout,
		navTimeout:  DefaultNavigationTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render navigates to url, waits for the body element and the load event,
// and returns the rendered DOM together with the URL the browser ended up
// on. A body that does not appear within the wait timeout is reported as
// ETIMEOUT.
func (r *Renderer) Render(ctx context.Context, url string) (*sitelens.RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, sitelens.WrapError(sitelens.ERETRIEVAL, err, "rendering %s", url)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return nil, sitelens.Errorf(sitelens.EINVALID, "renderer closed")
	}

	browser, err := r.browser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, sitelens.WrapError(sitelens.ERETRIEVAL, err, "opening page")
	}
	defer page.Close()

	if r.stealth {
		if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
			return nil, sitelens.WrapError(sitelens.ERETRIEVAL, err, "injecting stealth script")
		}
	}

	// Set context for all subsequent operations
	page = page.Context(ctx)

	// Navigate returns once response headers arrive; the load wait below
	// shares the same deadline.
	nav := page.Timeout(r.navTimeout)
	defer nav.CancelTimeout()
	if err := nav.Navigate(url); err != nil {
		return nil, sitelens.WrapError(sitelens.ERETRIEVAL, err, "navigating to %s", url)
	}

	wait := page.Timeout(r.waitTimeout)
	_, err = wait.Element("body")
	wait.CancelTimeout()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, sitelens.WrapError(sitelens.ETIMEOUT, err, "waiting for body of %s", url)
		}
		return nil, sitelens.WrapError(sitelens.ERETRIEVAL, err, "waiting for body of %s", url)
	}

	// Deferred and module scripts run before the load event.
	if err := nav.WaitLoad(); err != nil {
		return nil, sitelens.WrapError(sitelens.ERETRIEVAL, err, "waiting for %s to load", url)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, sitelens.WrapError(sitelens.ERETRIEVAL, err, "reading HTML of %s", url)
	}

	finalURL := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	r.session.pageCount++

	return &sitelens.RenderedPage{URL: finalURL, HTML: html}, nil
}

// browser returns the live browser, launching it on first use and
// recycling it once maxPages pages were rendered. Must be called with mu
// held.
func (r *Renderer) browser() (*rod.Browser, error) {
	if r.session != nil && r.maxPages > 0 && r.session.pageCount >= r.maxPages {
		r.recycle()
	}
	if r.session == nil {
		s, err := launchSession(r.browserBin)
		if err != nil {
			return nil, err
		}
		r.session = s
	}
	return r.session.browser, nil
}

// recycle starts a fresh browser and closes the old one. If launching the
// new browser fails, the old browser is kept. Must be called with mu held.
func (r *Renderer) recycle() {
	fresh, err := launchSession(r.browserBin)
	if err != nil {
		return
	}
	_ = r.session.close()
	r.session = fresh
}

// Close releases browser resources. Close is safe to call multiple times
// and on a Renderer that never rendered anything.
func (r *Renderer) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.session.close()
	r.session = nil
	return err
}

// LauncherPID returns the process ID of the browser launcher, or 0 when no
// browser is running. This method exists for testing purposes to verify
// proper cleanup.
func (r *Renderer) LauncherPID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.pid()
}
