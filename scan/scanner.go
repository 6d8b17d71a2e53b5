// Package scan provides profile-scan orchestration. It coordinates
// fetching, signal collection, and classification for single pages and
// for batches of independent profile URLs.
package scan

import (
	"context"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mstanek/scout"
	"github.com/mstanek/scout/bloom"
	"golang.org/x/sync/errgroup"
)

// Scanner orchestrates profile-page scans.
type Scanner struct {
	Fetcher     scout.Fetcher
	Collector   scout.SignalCollector
	Channels    scout.ChannelReader // optional; adds channel metadata to reports
	RateLimiter scout.HostLimiter   // optional
	Concurrency int
	RetryDelays []time.Duration
}

// Result summarizes a batch scan.
type Result struct {
	Scanned     int
	Failed      int
	Skipped     int
	Contactable int
}

// ProgressEvent reports progress during a batch scan.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. ScanAll
// never invokes it from more than one goroutine at a time, so
// implementations need no locking of their own.
type ProgressFunc func(event ProgressEvent)

// Scan evaluates a single profile page and always produces a Report.
// Upstream failures (navigation, collection) yield a Report with
// OK=false and an empty result rather than an error, so a batch of
// independent scans tolerates individual failures. The returned error
// is reserved for invalid input and context cancellation.
func (s *Scanner) Scan(ctx context.Context, pageURL string) (*scout.Report, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || !parsed.IsAbs() || parsed.Hostname() == "" {
		return nil, scout.Errorf(scout.EINVALID, "invalid profile URL %q", pageURL)
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, parsed.Hostname()); err != nil {
			return nil, err
		}
	}

	report := &scout.Report{
		ID:        uuid.New().String(),
		URL:       pageURL,
		ScannedAt: time.Now().UTC(),
		Result:    scout.Classify(nil),
	}

	html, err := FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, nil, s.RetryDelays)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		report.Error = err.Error()
		return report, nil
	}

	sig, err := s.Collector.Collect(html)
	if err != nil {
		report.Error = err.Error()
		return report, nil
	}

	report.OK = true
	report.ContentHash = ComputeHash(html)
	report.Result = scout.Classify(sig)

	if s.Channels != nil {
		// Channel metadata is best-effort; a miss is not a failed scan.
		if ch, err := s.Channels.ReadChannel(html); err == nil {
			report.Channel = ch
		}
	}

	return report, nil
}

// ScanAll scans a batch of profile URLs concurrently. Input URLs are
// deduplicated with a Bloom filter before scanning, so a skip is
// probabilistic: at the configured 1% false-positive rate a never-seen
// URL can occasionally be mistaken for a duplicate. Reports come back
// in input order. Per-URL failures, including invalid URLs, become
// OK=false reports rather than aborting the batch; only context
// cancellation stops it. The progress callback, if provided, is
// invoked serially even though scans run concurrently.
func (s *Scanner) ScanAll(ctx context.Context, urls []string, progress ProgressFunc) ([]*scout.Report, *Result, error) {
	seen := bloom.NewFilter(uint(max(len(urls), 1)), 0.01)
	var unique []string
	skipped := 0
	for _, u := range urls {
		if seen.Test(u) {
			skipped++
			continue
		}
		seen.Add(u)
		unique = append(unique, u)
	}

	total := len(unique)

	// Workers fire progress events concurrently; serialize them so the
	// callback never needs its own locking.
	var progressMu sync.Mutex
	emit := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		progress(event)
	}

	emit(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	reports := make([]*scout.Report, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range unique {
		g.Go(func() error {
			report, err := s.Scan(gctx, u)
			if err != nil {
				// One page's failure never aborts the batch: anything
				// short of cancellation becomes a failed report.
				if gctx.Err() != nil {
					return err
				}
				report = failedReport(u, err)
			}
			reports[i] = report

			done := int(completed.Add(1))
			event := ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, URL: u}
			if !report.OK {
				event.Type = ProgressFailed
				event.Error = scout.Errorf(scout.EUNAVAILABLE, "%s", report.Error)
			}
			emit(event)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	result := &Result{Skipped: skipped}
	for _, report := range reports {
		if report.OK {
			result.Scanned++
			if report.Result.HasBusinessInquiry {
				result.Contactable++
			}
		} else {
			result.Failed++
		}
	}

	emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return reports, result, nil
}

// failedReport shapes a pre-scan failure (invalid URL, rate-limit
// error) the same way Scan shapes an upstream one.
func failedReport(pageURL string, err error) *scout.Report {
	return &scout.Report{
		ID:        uuid.New().String(),
		URL:       pageURL,
		ScannedAt: time.Now().UTC(),
		Error:     scout.ErrorMessage(err),
		Result:    scout.Classify(nil),
	}
}
