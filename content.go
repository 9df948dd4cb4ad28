package webextract

import "time"

// FallbackSource identifies the strategy that produced fallback content.
type FallbackSource string

// Fallback extraction strategies, in the priority order they are tried.
const (
	SourceArticleContainers FallbackSource = "article-containers"
	SourceParagraphs        FallbackSource = "paragraphs"
	SourceTextBlocks        FallbackSource = "text-blocks"
)

// Heading represents a heading-delimited section of extracted content.
// Content fragments are deduplicated within the heading and preserve
// document order.
type Heading struct {
	Level   int      `json:"level"`
	Text    string   `json:"text"`
	Content []string `json:"content"`
}

// FallbackContent holds best-effort content extracted when no qualifying
// heading structure exists.
type FallbackContent struct {
	Source FallbackSource `json:"source"`
	Text   string         `json:"text"`
}

// ExtractedContent is the structured summary produced by one extraction.
type ExtractedContent struct {
	ID              string           `json:"id"`
	URL             string           `json:"url"`
	MetaTitle       string           `json:"metaTitle,omitempty"`
	MetaDescription string           `json:"metaDescription,omitempty"`
	Headings        []Heading        `json:"headings"`
	Fallback        *FallbackContent `json:"fallbackContent,omitempty"`
	ContentHash     string           `json:"contentHash"`
	ExtractedAt     time.Time        `json:"extractedAt"`
}

// Validate returns an error if the record violates the extraction
// invariants: heading levels must be in 1..4 with non-empty text, content
// strings must not be blank, and fallback content may only be present when
// no headings are.
func (c *ExtractedContent) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "extracted content URL required")
	}
	for _, h := range c.Headings {
		if h.Level < 1 || h.Level > 4 {
			return Errorf(EINVALID, "heading level %d out of range 1..4", h.Level)
		}
		if h.Text == "" {
			return Errorf(EINVALID, "heading text required")
		}
		for _, frag := range h.Content {
			if isBlank(frag) {
				return Errorf(EINVALID, "blank content fragment under heading %q", h.Text)
			}
		}
	}
	if len(c.Headings) > 0 && c.Fallback != nil {
		return Errorf(EINVALID, "fallback content set alongside headings")
	}
	if c.Fallback != nil && isBlank(c.Fallback.Text) {
		return Errorf(EINVALID, "fallback content text required")
	}
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
