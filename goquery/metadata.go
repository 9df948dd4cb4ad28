package goquery

import (
	"github.com/PuerkitoBio/goquery"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

// extractMetadata resolves the page title and description from the
// unmutated tree. For the title it tries, in order: the document <title>,
// the Open Graph title, the Twitter card title, and the first <h1>. For the
// description: the description meta tag, the Open Graph description, and
// the Twitter card description. First non-empty value wins; both may
// resolve to empty, which is not an error.
func extractMetadata(doc *goquery.Document) (title, description string) {
	titleSources := []func() string{
		func() string { return doc.Find("title").First().Text() },
		func() string { return metaContent(doc, "meta[property='og:title']") },
		func() string { return metaContent(doc, "meta[name='twitter:title']") },
		func() string { return doc.Find("h1").First().Text() },
	}
	for _, source := range titleSources {
		if v := webextract.CleanText(source()); v != "" {
			title = v
			break
		}
	}

	descriptionSelectors := []string{
		"meta[name='description']",
		"meta[property='og:description']",
		"meta[name='twitter:description']",
	}
	for _, sel := range descriptionSelectors {
		if v := webextract.CleanText(metaContent(doc, sel)); v != "" {
			description = v
			break
		}
	}

	return title, description
}

// metaContent returns the content attribute of the first element matching
// the selector, or an empty string.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return content
}
