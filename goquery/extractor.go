// Package goquery implements the heuristic content-extraction engine on top
// of the goquery DOM library. The engine is a pipeline over one mutable
// parsed document per call: metadata is read first, noise subtrees are
// removed, a single content container is selected, and heading-delimited
// sections (or tiered fallback content) are extracted from it.
package goquery

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

// Ensure Extractor implements webextract.Extractor at compile time.
var _ webextract.Extractor = (*Extractor)(nil)

// Extractor is the heuristic extraction engine.
type Extractor struct {
	heuristics webextract.Heuristics
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithHeuristics replaces the default heuristics. Tests use this to inject
// smaller selector and phrase fixtures.
func WithHeuristics(h webextract.Heuristics) Option {
	return func(e *Extractor) {
		e.heuristics = h
	}
}

// NewExtractor creates an Extractor with production heuristics.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		heuristics: webextract.DefaultHeuristics(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the extraction pipeline over the HTML document.
// The parsed tree lives exactly as long as this call; nothing is shared
// across calls. Malformed HTML is tolerated by the parser, so absent
// elements yield empty fields rather than errors.
func (e *Extractor) Extract(url, rawHTML string) (*webextract.ExtractedContent, error) {
	if rawHTML == "" {
		return nil, webextract.Errorf(webextract.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webextract.Errorf(webextract.EINVALID, "failed to parse HTML: %v", err)
	}

	// Metadata must be read before the noise filter mutates the tree.
	title, description := extractMetadata(doc)

	removeNoise(doc, e.heuristics)

	container := selectContainer(doc, e.heuristics)

	content := &webextract.ExtractedContent{
		ID:              uuid.NewString(),
		URL:             url,
		MetaTitle:       title,
		MetaDescription: description,
		Headings:        extractSections(container, e.heuristics),
		ExtractedAt:     time.Now().UTC(),
	}

	if len(content.Headings) == 0 {
		content.Fallback = extractFallback(container, e.heuristics)
	}
	content.ContentHash = hashContent(content)

	return content, nil
}

// hashContent computes a stable hash over the extracted text so callers can
// detect content changes between extractions of the same URL.
func hashContent(c *webextract.ExtractedContent) string {
	h := xxhash.New()
	writeString := func(s string) {
		_, _ = io.WriteString(h, s)
		_, _ = h.Write([]byte{0})
	}

	writeString(c.MetaTitle)
	writeString(c.MetaDescription)
	for _, heading := range c.Headings {
		writeString(heading.Text)
		for _, frag := range heading.Content {
			writeString(frag)
		}
	}
	if c.Fallback != nil {
		writeString(string(c.Fallback.Source))
		writeString(c.Fallback.Text)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
