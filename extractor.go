package webextract

// Extractor turns a raw HTML document into a structured content summary.
type Extractor interface {
	// Extract analyzes the HTML document retrieved from url and returns the
	// structured summary. Malformed or partial HTML is tolerated; absent
	// metadata or content yields empty fields, never an error. The parsed
	// tree is owned exclusively by the call and discarded when it returns.
	Extract(url, html string) (*ExtractedContent, error)
}
