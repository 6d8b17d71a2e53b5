package mock

import (
	"context"

	"github.com/mstanek/scout"
)

var _ scout.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of scout.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ scout.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of scout.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
