package goquery

import (
	"math"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

// Scoring constants are empirically calibrated; values must be preserved
// exactly for compatibility with previous extractions.
const (
	// Phase A: a semantic container qualifies once its normalized text
	// clears this length.
	semanticTextThreshold = 100

	// Phase B candidate gates.
	minCandidateTextLength = 200
	maxLinkDensity         = 0.5

	// Phase B base score weights.
	textLengthWeight    = 0.4
	textLengthCap       = 5000
	textHTMLRatioWeight = 0.3
	textTagRatioWeight  = 0.3
	textTagRatioCap     = 50

	// Tag and naming multipliers applied after the base score.
	articleMultiplier = 1.5
	mainMultiplier    = 1.4
	contentMultiplier = 1.3
	sidebarMultiplier = 0.3

	// Depth penalty divisor: 1 + depthPenaltyStep*ancestorDepth.
	depthPenaltyStep = 0.05
)

var (
	contentPatternRe = regexp.MustCompile(`(?i)content|article|post|entry|body|main`)
	sidebarPatternRe = regexp.MustCompile(`(?i)sidebar|widget|aside|related|popular|trending`)
)

// selectContainer picks the single element used as the root for content
// analysis.
//
// Phase A walks the semantic container selectors in priority order; for
// each selector the match with the longest normalized text is considered,
// and the first selector whose candidate clears semanticTextThreshold wins
// outright, even if a later selector would score higher.
//
// Phase B scores every div/section/article/main when no semantic candidate
// qualifies. Navigation-like elements (link density above maxLinkDensity)
// are discarded. If nothing scores above zero the document body is used.
func selectContainer(doc *goquery.Document, h webextract.Heuristics) *goquery.Selection {
	for _, sel := range h.ContainerSelectors {
		matcher, err := cascadia.Compile(sel)
		if err != nil {
			continue
		}
		var best *goquery.Selection
		bestLen := 0
		doc.FindMatcher(matcher).Each(func(_ int, s *goquery.Selection) {
			if n := len(webextract.CleanText(s.Text())); n > bestLen {
				best, bestLen = s, n
			}
		})
		if best != nil && bestLen > semanticTextThreshold {
			return best
		}
	}

	var best *goquery.Selection
	bestScore := 0.0
	doc.Find("div, section, article, main").Each(func(_ int, s *goquery.Selection) {
		if score := scoreCandidate(s); score > bestScore {
			best, bestScore = s, score
		}
	})
	if best != nil {
		return best
	}

	return doc.Find("body").First()
}

// scoreCandidate computes the Phase B score for a candidate container.
// Returns 0 for candidates that fail the text-length or link-density gates.
func scoreCandidate(s *goquery.Selection) float64 {
	text := webextract.CleanText(s.Text())
	textLen := float64(len(text))
	if textLen < minCandidateTextLength {
		return 0
	}

	linkLen := 0
	s.Find("a").Each(func(_ int, a *goquery.Selection) {
		linkLen += len(webextract.CleanText(a.Text()))
	})
	if float64(linkLen)/textLen > maxLinkDensity {
		return 0
	}

	rawHTML, err := goquery.OuterHtml(s)
	if err != nil || rawHTML == "" {
		return 0
	}

	textToTagRatio := textLen / float64(s.Find("*").Length()+1)

	score := textLengthWeight*math.Min(textLen/textLengthCap, 1) +
		textHTMLRatioWeight*(textLen/float64(len(rawHTML))) +
		textTagRatioWeight*math.Min(textToTagRatio/textTagRatioCap, 1)

	switch goquery.NodeName(s) {
	case "article":
		score *= articleMultiplier
	case "main":
		score *= mainMultiplier
	}

	ident := s.AttrOr("class", "") + " " + s.AttrOr("id", "")
	if contentPatternRe.MatchString(ident) {
		score *= contentMultiplier
	}
	if sidebarPatternRe.MatchString(ident) {
		score *= sidebarMultiplier
	}

	return score / (1 + depthPenaltyStep*float64(s.Parents().Length()))
}
