package sitelens

import "context"

// HostLimiter spaces out requests that target the same site.
type HostLimiter interface {
	// Wait blocks until a request to url may proceed. URLs on the same
	// host share one budget. Returns an error if the context is canceled.
	Wait(ctx context.Context, url string) error
}
