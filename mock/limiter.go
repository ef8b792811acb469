package mock

import (
	"context"

	"github.com/fwojciec/sitelens"
)

var _ sitelens.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of sitelens.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, url string) error
}

func (l *HostLimiter) Wait(ctx context.Context, url string) error {
	return l.WaitFn(ctx, url)
}
