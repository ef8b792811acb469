package mock

import (
	"context"

	"github.com/fwojciec/sitelens"
)

var (
	_ sitelens.Fetcher  = (*Fetcher)(nil)
	_ sitelens.Renderer = (*Renderer)(nil)
)

// Fetcher is a mock implementation of sitelens.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// Renderer is a mock implementation of sitelens.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string) (*sitelens.RenderedPage, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string) (*sitelens.RenderedPage, error) {
	return r.RenderFn(ctx, url)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}
