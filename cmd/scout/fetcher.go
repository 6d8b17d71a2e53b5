package main

import (
	"context"
	"os"

	"github.com/mstanek/scout"
)

var _ scout.Fetcher = (*fileFetcher)(nil)

// fileFetcher serves a previously saved rendering of a page from disk.
// It ignores the URL; the scan still records the URL it was given.
type fileFetcher struct {
	path string
}

func (f *fileFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return "", scout.Errorf(scout.ENOTFOUND, "cannot read %q: %v", f.path, err)
	}
	return string(b), nil
}

func (f *fileFetcher) Close() error {
	return nil
}
