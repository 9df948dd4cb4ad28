package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

// removeNoise strips structural, navigational, and boilerplate subtrees
// from the document. Removal is the only mutation the pipeline performs,
// and it is idempotent: a second pass over an already-filtered tree removes
// nothing further.
func removeNoise(doc *goquery.Document, h webextract.Heuristics) {
	for _, sel := range h.NoiseTags {
		safeRemove(doc, sel)
	}
	for _, sel := range h.NoiseSelectors {
		safeRemove(doc, sel)
	}

	removeNoiseNamed(doc, h)
	removeHidden(doc)
}

// removeNoiseNamed removes elements whose class or id contains a noise
// substring, unless the content guard also matches.
func removeNoiseNamed(doc *goquery.Document, h webextract.Heuristics) {
	doc.Find("[class],[id]").Each(func(_ int, s *goquery.Selection) {
		ident := strings.ToLower(s.AttrOr("class", "") + " " + s.AttrOr("id", ""))
		if h.ContentGuard != "" && strings.Contains(ident, h.ContentGuard) {
			return
		}
		for _, sub := range h.NoiseSubstrings {
			if strings.Contains(ident, sub) {
				s.Remove()
				return
			}
		}
	})
}

// removeHidden removes elements hidden via the hidden attribute, inline
// display:none styling, or aria-hidden=true.
func removeHidden(doc *goquery.Document) {
	safeRemove(doc, "[hidden]")
	safeRemove(doc, "[aria-hidden='true']")
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style := strings.ReplaceAll(strings.ToLower(s.AttrOr("style", "")), " ", "")
		if strings.Contains(style, "display:none") {
			s.Remove()
		}
	})
}

// safeRemove removes all matches for the selector. Selectors that fail to
// compile are skipped silently; a bad entry in the noise lists must never
// fail the extraction.
func safeRemove(doc *goquery.Document, selector string) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return
	}
	doc.FindMatcher(matcher).Remove()
}
