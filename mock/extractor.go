package mock

import webextract "github.com/JLcilliers/web-page-content-extractor"

var _ webextract.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webextract.Extractor.
type Extractor struct {
	ExtractFn func(url, html string) (*webextract.ExtractedContent, error)
}

func (e *Extractor) Extract(url, html string) (*webextract.ExtractedContent, error) {
	return e.ExtractFn(url, html)
}
