package sitelens

import "context"

// Fetcher retrieves the static HTML of a URL without executing scripts.
type Fetcher interface {
	// Fetch issues a single request and returns the response body.
	// Network failures and non-success statuses are returned as ERETRIEVAL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the Fetcher.
	Close() error
}

// RenderedPage is the result of loading a URL in a browser.
type RenderedPage struct {
	// URL is the page location after redirects.
	URL string

	// HTML is the serialized DOM after scripts have run.
	HTML string
}

// Renderer loads URLs in a scripted browser session.
// Implementations own the session and serialize navigations.
type Renderer interface {
	// Render navigates to the URL, waits for the document body to be present,
	// and returns the rendered page. Returns ETIMEOUT when the body does not
	// appear in time and ERETRIEVAL for other navigation failures.
	Render(ctx context.Context, url string) (*RenderedPage, error)

	// Close releases the browser session. Close must be safe to call
	// when no session was ever started, and more than once.
	Close() error
}
