// Package batch orchestrates fetching and extracting multiple pages. It
// bounds concurrency, rate-limits requests per domain, retries transient
// fetch failures, and isolates per-URL errors so one bad page never aborts
// the batch.
package batch

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

// Runner fetches and extracts a set of URLs.
type Runner struct {
	Fetcher   webextract.Fetcher
	Extractor webextract.Extractor

	// Limiter, if set, throttles requests per domain.
	Limiter *DomainLimiter

	// Concurrency bounds the number of in-flight pages. Defaults to 4.
	Concurrency int

	// RetryDelays are the backoff delays between fetch attempts.
	// Defaults to DefaultRetryDelays.
	RetryDelays []time.Duration
}

// Result holds the outcome for a single URL. Exactly one of Content or Err
// is set.
type Result struct {
	URL     string
	Content *webextract.ExtractedContent
	Err     error
}

// ProgressFunc is called after each URL finishes, successfully or not.
type ProgressFunc func(completed, total int, url string, err error)

// Run processes all URLs and returns results in input order. Per-URL
// failures are recorded in the corresponding Result; Run itself only fails
// when the context is canceled.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) ([]Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	results := make([]Result, len(urls))
	var completed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			results[i] = r.processURL(ctx, url, delays)
			if progress != nil {
				progress(int(completed.Add(1)), len(urls), url, results[i].Err)
			}
			// Context cancellation is the only batch-level failure.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Runner) processURL(ctx context.Context, url string, delays []time.Duration) Result {
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, url); err != nil {
			return Result{URL: url, Err: err}
		}
	}

	html, err := FetchWithRetryDelays(ctx, url, r.Fetcher.Fetch, delays)
	if err != nil {
		return Result{URL: url, Err: err}
	}

	content, err := r.Extractor.Extract(url, html)
	if err != nil {
		return Result{URL: url, Err: err}
	}
	return Result{URL: url, Content: content}
}
