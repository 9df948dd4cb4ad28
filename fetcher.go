package webextract

import "context"

// Fetcher retrieves raw HTML from URLs. The engine never issues network
// calls itself; all retrieval happens behind this boundary.
type Fetcher interface {
	// Fetch retrieves the HTML document at the URL.
	// Non-success responses surface as an EUNAVAILABLE error carrying the
	// HTTP status. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
