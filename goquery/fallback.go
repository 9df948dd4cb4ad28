package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

// Fallback tier limits.
const (
	articleMinTextLength  = 50
	articleTruncateLength = 500
	maxArticleBlocks      = 10

	paragraphMinLength = 30
	maxParagraphs      = 20

	textBlockMinLength = 20
	textBlockMaxLength = 500
	maxTextBlocks      = 30
)

var numericRe = regexp.MustCompile(`^\d+$`)

// extractFallback is invoked only when section extraction found no
// headings. Strategies run in strict priority order and the first one
// producing output wins; when none do, content is genuinely absent and nil
// is returned.
func extractFallback(container *goquery.Selection, h webextract.Heuristics) *webextract.FallbackContent {
	if fb := articleContainerFallback(container, h); fb != nil {
		return fb
	}
	if fb := paragraphFallback(container); fb != nil {
		return fb
	}
	return textBlockFallback(container, h)
}

// articleContainerFallback collects article-like blocks with more than
// articleMinTextLength characters of text, truncating each to
// articleTruncateLength characters.
func articleContainerFallback(container *goquery.Selection, h webextract.Heuristics) *webextract.FallbackContent {
	var blocks []string
	seenNodes := make(map[*html.Node]bool)

	for _, sel := range h.ArticleSelectors {
		matcher, err := cascadia.Compile(sel)
		if err != nil {
			continue
		}
		container.FindMatcher(matcher).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			node := s.Get(0)
			if seenNodes[node] {
				return true
			}
			seenNodes[node] = true

			text := webextract.CleanText(s.Text())
			if len(text) <= articleMinTextLength {
				return true
			}
			if runes := []rune(text); len(runes) > articleTruncateLength {
				text = string(runes[:articleTruncateLength]) + "..."
			}
			blocks = append(blocks, text)
			return len(blocks) < maxArticleBlocks
		})
		if len(blocks) >= maxArticleBlocks {
			break
		}
	}

	if len(blocks) == 0 {
		return nil
	}
	return &webextract.FallbackContent{
		Source: webextract.SourceArticleContainers,
		Text:   strings.Join(blocks, "\n\n"),
	}
}

// paragraphFallback collects paragraphs with more than paragraphMinLength
// characters of text.
func paragraphFallback(container *goquery.Selection) *webextract.FallbackContent {
	var paragraphs []string
	container.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := webextract.CleanText(s.Text())
		if len(text) > paragraphMinLength {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < maxParagraphs
	})

	if len(paragraphs) == 0 {
		return nil
	}
	return &webextract.FallbackContent{
		Source: webextract.SourceParagraphs,
		Text:   strings.Join(paragraphs, "\n\n"),
	}
}

// textBlockFallback collects generic short text blocks (table cells, spans,
// anchors), excluding navigation phrases and pure numbers, deduplicated by
// exact match.
func textBlockFallback(container *goquery.Selection, h webextract.Heuristics) *webextract.FallbackContent {
	var blocks []string
	seen := make(map[string]bool)

	container.Find("td, span, a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := webextract.CleanText(s.Text())
		if len(text) <= textBlockMinLength || len(text) >= textBlockMaxLength {
			return true
		}
		if seen[text] || isNavigationPhrase(text, h.NavigationPhrases) {
			return true
		}
		seen[text] = true
		blocks = append(blocks, text)
		return len(blocks) < maxTextBlocks
	})

	if len(blocks) == 0 {
		return nil
	}
	return &webextract.FallbackContent{
		Source: webextract.SourceTextBlocks,
		Text:   strings.Join(blocks, "\n"),
	}
}

// isNavigationPhrase reports whether the text is a navigation label or a
// bare number rather than content.
func isNavigationPhrase(text string, phrases []string) bool {
	lowered := strings.ToLower(text)
	if numericRe.MatchString(lowered) {
		return true
	}
	for _, phrase := range phrases {
		if lowered == phrase {
			return true
		}
	}
	return false
}
