package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

// headingLevels maps heading tag names to the levels the engine extracts.
// Levels 5 and 6 are intentionally excluded.
var headingLevels = map[string]int{
	"h1": 1,
	"h2": 2,
	"h3": 3,
	"h4": 4,
}

// extractSections collects level 1-4 headings in document order and gathers
// each heading's section content from its following siblings.
func extractSections(container *goquery.Selection, h webextract.Heuristics) []webextract.Heading {
	var headings []webextract.Heading

	container.Find("h1, h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		node := sel.Get(0)
		level, ok := headingLevels[node.Data]
		if !ok {
			return
		}
		text := webextract.CleanText(sel.Text())
		if text == "" || isNoiseHeading(text, h.NoiseHeadings) {
			return
		}
		headings = append(headings, webextract.Heading{
			Level:   level,
			Text:    text,
			Content: gatherSectionContent(node, level, h),
		})
	})

	return headings
}

// isNoiseHeading reports whether a cleaned heading text is page chrome
// rather than content.
func isNoiseHeading(text string, noiseHeadings []string) bool {
	lowered := strings.ToLower(text)
	for _, noise := range noiseHeadings {
		if lowered == noise {
			return true
		}
	}
	return false
}

// gatherSectionContent walks forward through the heading's following
// siblings, formatting each content-bearing element into text fragments.
//
// When the heading's immediate parent is a heading wrapper (some markup
// wraps every heading in a non-content container), the walk starts from the
// wrapper instead; sibling-walking from the bare heading would miss the
// wrapper's later siblings.
//
// The walk stops at the first sibling that is a heading of level <= the
// section's level, or a wrapper containing one. Wrapper siblings holding
// only lower-level headings are skipped, not treated as content.
//
// Fragments are deduplicated by exact match, preserving first-seen order.
func gatherSectionContent(heading *html.Node, level int, h webextract.Heuristics) []string {
	start := heading
	if parent := heading.Parent; parent != nil && isHeadingWrapper(parent, h.HeadingWrapperPatterns) {
		start = parent
	}

	var fragments []string
	seen := make(map[string]bool)

	for sib := start.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type != html.ElementNode {
			continue
		}

		if lv, ok := headingLevels[sib.Data]; ok {
			if lv <= level {
				break
			}
			continue
		}

		if isHeadingWrapper(sib, h.HeadingWrapperPatterns) {
			if lv, ok := wrappedHeadingLevel(sib); ok {
				if lv <= level {
					break
				}
				continue
			}
		}

		for _, frag := range formatElement(sib) {
			if frag == "" || seen[frag] {
				continue
			}
			seen[frag] = true
			fragments = append(fragments, frag)
		}
	}

	return fragments
}

// isHeadingWrapper reports whether the element's class matches one of the
// configured wrapper patterns.
func isHeadingWrapper(n *html.Node, patterns []string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	class := strings.ToLower(attrValue(n, "class"))
	if class == "" {
		return false
	}
	for _, pattern := range patterns {
		if strings.Contains(class, pattern) {
			return true
		}
	}
	return false
}

// wrappedHeadingLevel returns the smallest heading level found inside the
// wrapper, or false if the wrapper contains no extractable heading.
func wrappedHeadingLevel(n *html.Node) (int, bool) {
	minLevel := 0
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode {
			if lv, ok := headingLevels[cur.Data]; ok && (minLevel == 0 || lv < minLevel) {
				minLevel = lv
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return minLevel, minLevel != 0
}

// attrValue returns the value of the named attribute, or an empty string.
func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}
